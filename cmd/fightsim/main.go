// fightsim runs a deterministic scripted exhibition bout on the combat
// core and writes a JSON report. It is a host-side harness: no window, no
// device polling, just ticks.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	cfg "github.com/mirrorfall/fightcore/config"
	"github.com/mirrorfall/fightcore/core"
)

type report struct {
	Ticks    int           `json:"ticks"`
	Winner   string        `json:"winner"`
	TimeLeft float64       `json:"time_left"`
	Health   [2]int        `json:"health"`
	Final    core.Snapshot `json:"final"`
}

func main() {
	var movesPath, out string
	var dt float64
	var maxTicks int
	flag.StringVar(&movesPath, "moves", "", "YAML move catalog (empty = built-in)")
	flag.StringVar(&out, "out", "", "JSON report file (empty = stdout)")
	flag.Float64Var(&dt, "dt", 1.0/60.0, "fixed timestep in seconds")
	flag.IntVar(&maxTicks, "max-ticks", 60*60*2, "tick cap")
	flag.Parse()

	table := cfg.DefaultMoves()
	if movesPath != "" {
		var err error
		table, err = cfg.LoadMoves(movesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fightsim: %v\n", err)
			os.Exit(1)
		}
	}

	eng, err := core.NewWithMoves(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fightsim: %v\n", err)
		os.Exit(1)
	}

	ticks := 0
	snap := eng.Snapshot()
	for !snap.Round.Over && ticks < maxTicks {
		eng.Update(dt, core.Intents{
			P1: scriptIntent(0, snap, ticks),
			P2: scriptIntent(1, snap, ticks),
		})
		snap = eng.Snapshot()
		ticks++
	}

	rep := report{
		Ticks:    ticks,
		Winner:   snap.Round.Winner.String(),
		TimeLeft: snap.Round.TimeLeft,
		Health:   [2]int{snap.Fighters[0].Health, snap.Fighters[1].Health},
		Final:    snap,
	}
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "fightsim: %v\n", err)
		os.Exit(1)
	}
	b = append(b, '\n')

	if out == "" {
		os.Stdout.Write(b)
		return
	}
	if err := os.WriteFile(out, b, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "fightsim: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Bout finished. winner=%s ticks=%d -> %s\n", rep.Winner, rep.Ticks, out)
}

// scriptIntent is a fixed, seedless bot: close the gap, then trade
// attacks on a tick pattern. Player 2 guards in bursts so blocked hits
// show up in the report.
func scriptIntent(idx int, snap core.Snapshot, tick int) cfg.Intent {
	me := snap.Fighters[idx]
	them := snap.Fighters[1-idx]

	var in cfg.Intent
	dx := (them.X + cfg.Fighter.Width/2) - (me.X + cfg.Fighter.Width/2)
	gap := dx
	if gap < 0 {
		gap = -gap
	}

	if gap > 140 {
		in.Left = dx < 0
		in.Right = dx > 0
		return in
	}

	if idx == 1 && (tick/90)%3 == 2 {
		in.Block = true
		return in
	}

	switch (tick + idx*17) % 60 {
	case 0:
		in.Light = true
	case 20:
		in.Heavy = true
	case 40:
		in.Special = true
	}
	return in
}
