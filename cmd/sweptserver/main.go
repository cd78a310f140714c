// Command sweptserver runs a world.World and serves its mutation events
// over websocket via netvis, so an external client (e.g. a browser-based
// spectator) can observe a simulation live.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/duskfall/swept2d/config"
	"github.com/duskfall/swept2d/netvis"
	"github.com/duskfall/swept2d/world"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	cfg := config.DefaultWorldConfig()
	w, err := config.NewWorld[string](cfg)
	if err != nil {
		log.Fatalf("sweptserver: %v", err)
	}

	server := netvis.NewServer()
	http.Handle("/observe", server.Handler())

	seedAndDrive(w, server)

	log.Printf("sweptserver: listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// seedAndDrive adds a couple of items and performs one move, publishing
// each mutation to connected observers, as a smoke-test of the wiring.
func seedAndDrive(w *world.World[string], server *netvis.Server) {
	publishAdd(w, server, "wall", 0, 0, 200, 16)
	publishAdd(w, server, "ball", 40, 100, 16, 16)

	cols, err := w.Move("ball", 40, 0, nil, nil)
	if err != nil {
		log.Printf("sweptserver: move error: %v", err)
		return
	}
	b, _ := w.GetBox("ball")
	evt := netvis.Event{
		Kind:   netvis.EventMove,
		Item:   "ball",
		Left:   b.Left,
		Top:    b.Top,
		Width:  b.Width,
		Height: b.Height,
	}
	for _, c := range cols {
		evt.Collisions = append(evt.Collisions, netvis.CollisionInfo{
			Other:          c.Other,
			Ti:             c.Ti,
			IsIntersection: c.IsIntersection,
			Nx:             c.Nx,
			Ny:             c.Ny,
		})
	}
	server.Publish(evt)
}

func publishAdd(w *world.World[string], server *netvis.Server, item string, l, t, width, height float64) {
	if err := w.Add(item, l, t, width, height); err != nil {
		log.Printf("sweptserver: add %s: %v", item, err)
		return
	}
	server.Publish(netvis.Event{Kind: netvis.EventAdd, Item: item, Left: l, Top: t, Width: width, Height: height})
}
