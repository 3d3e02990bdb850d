package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/julianstephens/surprise/internal/audio"
	"github.com/julianstephens/surprise/internal/errors"
	"github.com/julianstephens/surprise/internal/synth"
)

type MelodyCmd struct {
	Listen bool `help:"Play the loop until interrupted."`
}

func (cmd *MelodyCmd) Run(ctx *Context) error {
	m := synth.HappyBirthday()
	PrintSchedule(ctx, m)

	if !cmd.Listen {
		return nil
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Listen(sigCtx, ctx, m)
}

// PrintSchedule writes one row per note of a single pass.
func PrintSchedule(ctx *Context, m synth.Melody) {
	w := tabwriter.NewWriter(ctx.Out, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "#\tNOTE\tSTART\tFREQ\tDURATION")
	fmt.Fprintln(w, "-\t----\t-----\t----\t--------")
	for _, ev := range synth.Schedule(m, synth.DefaultGap) {
		fmt.Fprintf(w, "%d\t%s\t%.2fs\t%.2f Hz\t%.2fs\n",
			ev.Index+1, m[ev.Index].Name(), ev.Start, ev.Frequency, ev.Duration)
	}
	w.Flush()

	fmt.Fprintln(ctx.Out)
	fmt.Fprintf(ctx.Out, "Pass length: %.2fs\n", synth.PassDuration(m, synth.DefaultGap))
	fmt.Fprintf(ctx.Out, "Next pass:   %.2fs after the pass starts\n",
		synth.NextPassOffset(m, synth.DefaultGap, synth.DefaultPause))
}

// Listen loops the melody until ctx is cancelled.
func Listen(ctx context.Context, c *Context, m synth.Melody) error {
	player := c.NewPlayer(audio.WithMelody(m))
	defer player.Close()

	player.SetEnabled(true)
	if player.Degraded() {
		return errors.Wrap(errors.KindCapability, "listen", audio.ErrNoDevice)
	}

	fmt.Fprintln(c.Out, "\n🎵 Playing, press ctrl+c to stop...")
	<-ctx.Done()
	player.SetEnabled(false)
	fmt.Fprintf(c.Out, "Played %d pass(es).\n", player.Passes())
	return nil
}
