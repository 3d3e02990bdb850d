package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/surprise/internal/errors"
	"github.com/julianstephens/surprise/internal/logger"
	"github.com/julianstephens/surprise/internal/tui"
)

type PlayCmd struct{}

func (cmd *PlayCmd) Run(ctx *Context) error {
	c, err := ctx.LoadContent()
	if err != nil {
		return err
	}
	target, err := ctx.Config.TargetTime()
	if err != nil {
		return errors.Wrap(errors.KindConfig, "countdown target", err)
	}

	player := ctx.NewPlayer()
	defer func() {
		if err := player.Close(); err != nil {
			logger.Warn("failed to close audio", "error", err)
		}
	}()

	seq := ctx.NewSequencer()
	model := tui.NewModel(seq, player, c, tui.Options{
		Recipient: ctx.Config.Recipient,
		Sender:    ctx.Config.Sender,
		Target:    target,
		Autoplay:  ctx.Config.Autoplay,
		Mute:      ctx.Config.Mute,
	})
	logger.Info("starting", "run", seq.RunID(), "target", target, "strict", seq.Strict())

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(gctx),
	)

	g.Go(func() error {
		defer stop()
		_, err := p.Run()
		if stderrors.Is(err, tea.ErrProgramKilled) && sigCtx.Err() != nil {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil {
		return errors.Wrap(errors.KindInternal, "run tui", err)
	}
	return nil
}
