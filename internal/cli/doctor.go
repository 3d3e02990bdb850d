package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/surprise/internal/audio"
	"github.com/julianstephens/surprise/internal/logger"
	"github.com/julianstephens/surprise/internal/utils"
)

// soundServers are the process names that indicate a running audio stack.
var soundServers = []string{"pulseaudio", "pipewire", "coreaudiod", "audiodg"}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.Out
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	configValid := false

	// Check 1: Config values
	if err := ctx.Config.Validate(); err != nil {
		fmt.Fprintf(out, "❌ Configuration: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", indent(err))
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Configuration: OK\n")
		configValid = true
	}
	if ctx.Config.File != "" {
		fmt.Fprintf(out, "   Read from %s\n", ctx.Config.File)
	}

	// Check 2: Content file
	if err := checkContent(ctx); err != nil {
		fmt.Fprintf(out, "❌ Content: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", indent(err))
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Content: OK\n")
	}

	// Check 3: Countdown target (only if config is valid)
	if configValid {
		remaining, err := checkTarget(ctx)
		if err != nil {
			fmt.Fprintf(out, "❌ Countdown target: FAIL\n")
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
		} else if remaining.Zero() {
			fmt.Fprintf(out, "✓ Countdown target: OK (already reached)\n")
		} else {
			fmt.Fprintf(out, "✓ Countdown target: OK (%dd %dh %dm %ds to go)\n",
				remaining.Days, remaining.Hours, remaining.Minutes, remaining.Seconds)
		}
	} else {
		fmt.Fprintf(out, "⊘ Countdown target: SKIPPED (configuration invalid)\n")
	}

	// Check 4: Audio device (warning only)
	if err := checkAudio(ctx); err != nil {
		fmt.Fprintf(out, "⚠ Audio device: WARNING\n")
		fmt.Fprintf(out, "   %v - the greeting will run silently\n", err)
	} else {
		fmt.Fprintf(out, "✓ Audio device: OK\n")
	}

	// Check 5: Sound server (warning only)
	if name, err := findSoundServer(ctx); err != nil {
		fmt.Fprintf(out, "⚠ Sound server: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ Sound server: OK (%s)\n", name)
	}

	if path := logger.Path(); path != "" {
		fmt.Fprintf(out, "\nLogs: %s\n", path)
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func indent(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "\n          ")
}

func checkContent(ctx *Context) error {
	c, err := ctx.LoadContent()
	if err != nil {
		return err
	}
	if len(c.Quiz) == 0 {
		return fmt.Errorf("no quiz questions")
	}
	return nil
}

func checkTarget(ctx *Context) (utils.Remaining, error) {
	target, err := ctx.Config.TargetTime()
	if err != nil {
		return utils.Remaining{}, err
	}
	now, err := utils.NowInTimezone(ctx.Config.Timezone)
	if err != nil {
		return utils.Remaining{}, err
	}
	return utils.Until(now, target), nil
}

func checkAudio(ctx *Context) error {
	if ctx.Opener == nil {
		return audio.ErrNoDevice
	}
	b, err := ctx.Opener()
	if err != nil {
		return fmt.Errorf("%w: %v", audio.ErrNoDevice, err)
	}
	return b.Close()
}

func findSoundServer(ctx *Context) (string, error) {
	if ctx.Processes == nil {
		return "", fmt.Errorf("process listing unavailable")
	}
	procs, err := ctx.Processes()
	if err != nil {
		return "", fmt.Errorf("failed to list processes: %w", err)
	}
	for _, p := range procs {
		exe := strings.TrimSuffix(strings.ToLower(filepath.Base(p.Executable())), ".exe")
		for _, name := range soundServers {
			if exe == name {
				return exe, nil
			}
		}
	}
	return "", fmt.Errorf("no sound server found (looked for %s)", strings.Join(soundServers, ", "))
}
