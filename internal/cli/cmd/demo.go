package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli/model"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
)

// layoutFlags describe a flat split on the command line.
type layoutFlags struct {
	panes       int
	direction   string
	percentages []float64
}

var demoFlags layoutFlags

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive split demo",
	Long: `Open a full-screen demo of resizable panes.

Without flags the layout comes from the [layout] section of the config
file, nested splits included. Flags describe a flat split instead.

Drag a handle with the mouse, or focus one with tab and move it with the
arrow keys. Editing the config file while the demo runs re-applies its
appearance and keyboard step.

Examples:
  splitter demo                                  # Layout from the config file
  splitter demo --panes 4                        # Four equal panes side by side
  splitter demo -n 3 -d column -p 20,30          # Stacked panes at 20%, 30%, 50%`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	addLayoutFlags(demoCmd, &demoFlags, 0)
}

func addLayoutFlags(cmd *cobra.Command, flags *layoutFlags, defaultPanes int) {
	cmd.Flags().IntVarP(&flags.panes, "panes", "n", defaultPanes, "number of panes")
	cmd.Flags().StringVarP(&flags.direction, "direction", "d", "", "row (side by side) or column (stacked)")
	cmd.Flags().Float64SliceVarP(&flags.percentages, "percentages", "p", nil,
		"pane sizes: every pane but the last, or every pane adding up to 100")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	spec, err := demoSpec(app.Config, demoFlags)
	if err != nil {
		return err
	}

	zones := zone.New()
	defer zones.Close()

	ctx := app.TUICtx()
	m, err := model.NewSplitModel(ctx, app.Theme, model.SplitModelConfig{
		Spec:   spec,
		Config: app.Config,
		Zones:  zones,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))

	watchErr := app.WatchConfig(ctx, func(cfg *config.Config) {
		p.Send(model.ConfigReloadedMsg{Config: cfg})
	})
	if watchErr != nil {
		logging.FromContext(ctx).Warn().Err(watchErr).Msg("config hot reload unavailable")
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// demoSpec picks the layout flags describe, or the configured one when no
// flag is set.
func demoSpec(cfg *config.Config, flags layoutFlags) (*entity.SplitSpec, error) {
	if flags.panes == 0 {
		if flags.direction != "" || len(flags.percentages) > 0 {
			return nil, fmt.Errorf("--direction and --percentages need --panes")
		}
		return cfg.Layout.SplitSpec()
	}
	return flatSpec(flags)
}

func flatSpec(flags layoutFlags) (*entity.SplitSpec, error) {
	direction := flags.direction
	if direction == "" {
		direction = "row"
	}
	layout := config.FlatLayout(flags.panes, direction, flags.percentages)
	return layout.SplitSpec()
}
