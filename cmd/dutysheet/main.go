// Package main provides the CLI entry point for dutysheet-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dutysheet-go/internal/config"
	"github.com/ukaji3/dutysheet-go/internal/handlers"
	"github.com/ukaji3/dutysheet-go/internal/store"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/output"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
)

var (
	outputPath  string
	pretty      bool
	asJSON      bool
	sheetName   string
	profileArg  string
	dateArg     string
	rangeArg    string
	startColumn int
	columnStep  int
	startRow    int
	rowStep     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dutysheet",
		Short: "Extract daily pharmacy duty text from roster spreadsheets",
		Long: `dutysheet-go reads a roster spreadsheet and renders the duty
announcement of one pharmacy location for the next day.`,
		SilenceUsage: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload/analyze HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List sheets with their data ranges",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	renderCmd := &cobra.Command{
		Use:   "render [input.xlsx]",
		Short: "Render the duty text of a location",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (required)")
	renderCmd.Flags().StringVarP(&profileArg, "profile", "p", "1", "Location id: 1, 2 or 3")
	renderCmd.Flags().StringVar(&dateArg, "date", "", "Target date YYYY-MM-DD (default: tomorrow)")
	addOffsetFlags(renderCmd)
	renderCmd.Flags().BoolVar(&asJSON, "json", false, "Output the schedule as JSON")
	_ = renderCmd.MarkFlagRequired("sheet")

	windowCmd := &cobra.Command{
		Use:   "window [input.xlsx]",
		Short: "Extract the text of an A1 range, column by column",
		Args:  cobra.ExactArgs(1),
		RunE:  runWindow,
	}
	windowCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (required)")
	windowCmd.Flags().StringVar(&rangeArg, "range", "", "A1 range, e.g. B1:D14 (required)")
	_ = windowCmd.MarkFlagRequired("sheet")
	_ = windowCmd.MarkFlagRequired("range")

	previewCmd := &cobra.Command{
		Use:   "preview [input.xlsx]",
		Short: "Dump the non-empty cells of a sheet as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (required)")
	previewCmd.Flags().StringVar(&rangeArg, "range", "", "Limit to an A1 range")
	_ = previewCmd.MarkFlagRequired("sheet")

	for _, cmd := range []*cobra.Command{sheetsCmd, renderCmd, previewCmd} {
		cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
		cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	}

	rootCmd.AddCommand(serveCmd, sheetsCmd, renderCmd, windowCmd, previewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	offsets := store.NewOffsetStore(cfg.ConfigPath, log)
	router := handlers.NewRouter(cfg, offsets, log)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port, "upload_dir", cfg.UploadDir, "config_path", cfg.ConfigPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-shutdown:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("shutdown complete")
	return nil
}

func runSheets(cmd *cobra.Command, args []string) error {
	wb, err := dutysheet.Inspect(args[0])
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.WorkbookToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(jsonData)
}

func runRender(cmd *cobra.Command, args []string) error {
	id, err := profile.ParseID(profileArg)
	if err != nil {
		return err
	}

	target := dutysheet.Tomorrow(time.Now())
	if dateArg != "" {
		if target, err = dutysheet.ParseTarget(dateArg, time.Local); err != nil {
			return err
		}
	}

	opts := dutysheet.DefaultOptions()
	opts.Logger = newLogger(slog.LevelWarn)
	if id == profile.Dezhongtang {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		offsets := locationOffsets(cfg.ConfigPath, offsetsPatch(cmd), opts.Logger)
		opts.Offsets = &offsets
	}

	sched, err := dutysheet.Render(args[0], sheetName, id, target, opts)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if !asJSON {
		return writeOutput([]byte(sched.Text))
	}
	jsonData, err := output.ToJSON(sched, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(jsonData)
}

func addOffsetFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&startColumn, "start-column", 0, "Override startColumn (location 1)")
	cmd.Flags().IntVar(&columnStep, "column-step", 0, "Override columnStep (location 1)")
	cmd.Flags().IntVar(&startRow, "start-row", 0, "Override startRow (location 1)")
	cmd.Flags().IntVar(&rowStep, "row-step", 0, "Override rowStep (location 1)")
}

// locationOffsets merges flag overrides over the offsets saved at path,
// the same file the web UI writes.
func locationOffsets(path string, patch *profile.OffsetsPatch, log *slog.Logger) profile.Offsets {
	return patch.Apply(store.NewOffsetStore(path, log).Load())
}

// offsetsPatch collects the offset flags the user actually set.
func offsetsPatch(cmd *cobra.Command) *profile.OffsetsPatch {
	patch := &profile.OffsetsPatch{}
	if cmd.Flags().Changed("start-column") {
		patch.StartColumn = &startColumn
	}
	if cmd.Flags().Changed("column-step") {
		patch.ColumnStep = &columnStep
	}
	if cmd.Flags().Changed("start-row") {
		patch.StartRow = &startRow
	}
	if cmd.Flags().Changed("row-step") {
		patch.RowStep = &rowStep
	}
	return patch
}

func runWindow(cmd *cobra.Command, args []string) error {
	opts := dutysheet.DefaultOptions()
	opts.Logger = newLogger(slog.LevelWarn)

	text, err := dutysheet.ExtractRange(args[0], sheetName, rangeArg, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	fmt.Print(text)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	p, err := dutysheet.Preview(args[0], sheetName, rangeArg)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	jsonData, err := output.PreviewToJSON(p, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(jsonData)
}

func writeOutput(data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
