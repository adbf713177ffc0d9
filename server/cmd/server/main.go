package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/automoto/rocketview/assets"
	"github.com/automoto/rocketview/config"
	"github.com/automoto/rocketview/server/core"
	"github.com/automoto/rocketview/shared/messages"
)

func main() {
	port := flag.Int("port", config.Network.Port, "Server port")
	tickRate := flag.Int("tickrate", 60, "Frames broadcast per second")
	arenaName := flag.String("arena", assets.DefaultArena, "Embedded arena to simulate")
	autopilot := flag.Bool("autopilot", true, "Drive the car towards the ball")
	distance := flag.Float64("distance", config.Camera.Distance, "Camera distance sent to clients")
	height := flag.Float64("height", config.Camera.Height, "Camera height sent to clients")
	pitch := flag.Float64("pitch", config.Camera.Pitch, "Camera pitch sent to clients")
	fov := flag.Float64("fov", config.Camera.FOV, "Camera field of view sent to clients")
	flag.Parse()

	a, err := assets.LoadArena(*arenaName)
	if err != nil {
		names, _ := assets.ArenaNames()
		log.Fatalf("Failed to load arena: %v (available: %v)", err, names)
	}

	server := core.NewServer(core.Config{
		Arena:     a,
		TickRate:  *tickRate,
		Autopilot: *autopilot,
		Settings: messages.Settings{
			Distance: *distance,
			Height:   *height,
			Pitch:    *pitch,
			FOV:      *fov,
		},
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting telemetry server on port %d (tick rate: %d/s, arena: %s, autopilot: %v)",
		*port, *tickRate, a.Name, *autopilot)
	if err := server.Start(":" + strconv.Itoa(*port)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
