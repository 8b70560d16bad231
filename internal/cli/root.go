package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/table"
	"github.com/bjaus/table/internal/config"
	"github.com/bjaus/table/internal/logging"
)

func newRootCmd(app *App) *cobra.Command {
	var (
		borderName  string
		delimiter   string
		configPath  string
		withHeader  bool
		listBorders bool
		debugMode   bool
		logFormat   string
	)

	cmd := &cobra.Command{
		Use:   "ttytable",
		Short: "Print delimited rows as an aligned table",
		Long: `Reads rows from stdin, one per line, splits each line on the delimiter
and prints the rows as an aligned plain-text table. Blank lines at the end of
the input are ignored. A single line may be at most 1 MiB.`,
		Example: "  printf 'name\\tage\\nAlice\\t30\\n' | ttytable --header --border unicode",
		Args:    cobra.NoArgs,
		Version: app.Version,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := logging.ParseFormat(logFormat)
			if err != nil {
				return WrapUserError(err, "invalid --log-format", "Use --log-format text or --log-format json")
			}
			logging.Setup(app.Stderr, f, debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listBorders {
				_, err := fmt.Fprintln(app.Stdout, strings.Join(table.BorderNames(), "\n"))
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return WrapUserError(err, "failed to load config", "Fix or remove the config file")
			}

			if !cmd.Flags().Changed("border") {
				borderName = cfg.BorderName()
			}
			border, err := table.ParseBorder(borderName)
			if err != nil {
				return WrapUserError(err, "invalid --border",
					"Valid borders: "+strings.Join(table.BorderNames(), ", "))
			}
			if !cmd.Flags().Changed("delimiter") {
				delimiter = cfg.GetDelimiter()
			}
			if delimiter == "" {
				return &UserError{Message: "invalid --delimiter: must not be empty"}
			}
			slog.Debug("resolved options", "border", border.Name(), "delimiter", delimiter, "header", withHeader)

			if app.stdinIsTerminal() {
				return cmd.Help()
			}

			g, err := readGrid(app.Stdin, delimiter, withHeader)
			if err != nil {
				return fmt.Errorf("read rows: %w", err)
			}
			slog.Debug("read table", "rows", g.Len(), "columns", g.ColumnCount())
			return table.Write(app.Stdout, g, border)
		},
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	fs := cmd.Flags()
	fs.StringVarP(&borderName, "border", "b", "none", "Border style: "+strings.Join(table.BorderNames(), "|"))
	fs.StringVarP(&delimiter, "delimiter", "d", "\t", "Cell delimiter within a line")
	fs.BoolVarP(&withHeader, "header", "H", false, "Treat the first line as the header row")
	fs.BoolVar(&listBorders, "list-borders", false, "List border styles and exit")
	fs.StringVar(&configPath, "config", "", "Config file (default ~/.config/ttytable/config.yaml)")
	fs.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	fs.StringVar(&logFormat, "log-format", string(logging.FormatText), "Log format on stderr: text|json")
	cmd.SetGlobalNormalizationFunc(normalizeAliases)

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
