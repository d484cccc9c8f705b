package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/logging"
	"github.com/bnema/splitter/internal/ui/layout"
)

// dragOptions describe a replayed drag.
type dragOptions struct {
	layoutFlags
	handle   int
	origin   float64
	length   float64
	to       []float64
	decimals int
}

var dragOpts dragOptions

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Replay a handle drag and print the sizes after every move",
	Long: `Replay a drag without a terminal UI.

The container spans --length units from --origin along the split axis.
The handle is grabbed, moved to each --to coordinate in turn, and
released. Every move prints its outcome:

  applied     the two panes around the handle were resized
  rejected    the target was outside the handle's range, nothing changed
  idle        no drag in progress
  degenerate  the container has no usable size

Examples:
  splitter drag -n 3 --handle 0 --to 10 --to 50     # 100 wide container at 0
  splitter drag -n 4 -d column --handle 2 --origin 100 --length 400 --to 350`,
	RunE: runDragCmd,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	addLayoutFlags(dragCmd, &dragOpts.layoutFlags, entity.MinPaneCount)
	dragCmd.Flags().IntVar(&dragOpts.handle, "handle", 0, "handle to drag (0 is between the first two panes)")
	dragCmd.Flags().Float64Var(&dragOpts.origin, "origin", 0, "container start coordinate")
	dragCmd.Flags().Float64Var(&dragOpts.length, "length", entity.PercentTotal, "container length")
	dragCmd.Flags().Float64SliceVar(&dragOpts.to, "to", nil, "pointer coordinate to move to (repeatable)")
	dragCmd.Flags().IntVar(&dragOpts.decimals, "decimals", -1, "digits shown for sizes (default from config)")
	_ = dragCmd.MarkFlagRequired("to")
}

func runDragCmd(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	opts := dragOpts
	if opts.decimals < 0 {
		opts.decimals = app.Config.Appearance.Decimals
	}
	return runDrag(app.Ctx(), cmd.OutOrStdout(), app.Theme, opts)
}

func runDrag(ctx context.Context, w io.Writer, theme *styles.Theme, opts dragOptions) error {
	rows, err := replayDrag(ctx, opts)
	if err != nil {
		return err
	}

	sizesWidth := 0
	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		sizesWidth = max(sizesWidth, len(row.Sizes))
		tableRows = append(tableRows, row.ToRow())
	}

	columns := styles.DragTableColumns(sizesWidth)
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	t := styles.NewStyledTable(theme, columns, tableRows, width, len(tableRows)+2)

	direction := opts.direction
	if direction == "" {
		direction = entity.DirectionRow.String()
	}
	fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("%d panes (%s), handle %d", opts.panes, direction, opts.handle)))
	fmt.Fprintln(w, t.View())
	return nil
}

// replayDrag grabs opts.handle, moves it to every opts.to coordinate and
// releases it. The first row is the handle's starting position.
func replayDrag(ctx context.Context, opts dragOptions) ([]styles.DragStepRow, error) {
	dir := entity.DirectionRow
	if opts.direction != "" {
		var err error
		if dir, err = entity.ParseLayoutDirection(opts.direction); err != nil {
			return nil, err
		}
	}

	ctx = logging.WithHandle(logging.WithComponent(ctx, "drag"), opts.handle)
	log := logging.FromContext(ctx)
	logChange := port.SplitObserverFunc(func(change entity.SplitChange) {
		log.Debug().Floats64("percentages", change.Current.All()).Msg("drag step applied")
	})
	engine, err := layout.NewSplitEngine(ctx, opts.panes, dir, opts.percentages,
		layout.WithID("drag"), layout.WithObserver(logChange))
	if err != nil {
		return nil, err
	}
	offset, err := engine.HandleOffset(opts.handle)
	if err != nil {
		return nil, err
	}
	if err := engine.PointerDown(opts.handle); err != nil {
		return nil, err
	}
	defer engine.PointerUp()

	bounds := entity.ContainerBounds{Origin: opts.origin, Length: opts.length}
	rows := make([]styles.DragStepRow, 0, len(opts.to)+1)
	rows = append(rows, styles.DragStepRow{
		Step:       0,
		Coordinate: opts.origin + offset/entity.PercentTotal*opts.length,
		Outcome:    "start",
		Sizes:      engine.FormatTracks(opts.decimals),
	})

	for i, coord := range opts.to {
		x, y := coord, 0.0
		if dir == entity.DirectionColumn {
			x, y = 0, coord
		}
		outcome := engine.PointerMove(x, y, bounds)
		rows = append(rows, styles.DragStepRow{
			Step:       i + 1,
			Coordinate: coord,
			Outcome:    outcome.String(),
			Sizes:      engine.FormatTracks(opts.decimals),
		})
	}
	return rows, nil
}
