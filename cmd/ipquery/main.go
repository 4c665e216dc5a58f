package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kyxap1/ipquery"
	"github.com/kyxap1/ipquery/internal/config"
)

var (
	cfg    *config.Config
	logger *logrus.Logger
)

var ErrUnknownFormat = errors.New("unknown output format, expected json or table")

func init() {
	// Initialize logger
	logger = logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Load configuration
	cfg = config.LoadConfig()

	// Set log level
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "ipquery [ip ...]",
		Short: "Look up IP addresses with the ipquery.io API",
		Long: `Look up geolocation, ISP and risk information for IP addresses
using the ipquery.io API. With no arguments the caller's own public
IP address is printed.`,
		RunE: runLookup,
	}

	// Add CLI flags
	rootCmd.PersistentFlags().StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "API base URL")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	rootCmd.PersistentFlags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	if err := validateFormat(cfg.Format); err != nil {
		return err
	}

	// Flags may have changed the log level after init
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	client := ipquery.NewClient(
		ipquery.WithEndpoint(cfg.Endpoint),
		ipquery.WithTimeout(cfg.Timeout),
		ipquery.WithLogger(logger),
	)

	ctx := cmd.Context()

	// No arguments: print the caller's own public IP
	if len(args) == 0 {
		ip, err := client.OwnIP(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ip)
		return nil
	}

	var infos []ipquery.IPInfo
	if len(args) == 1 {
		info, err := client.QueryIP(ctx, args[0])
		if err != nil {
			return err
		}
		infos = []ipquery.IPInfo{*info}
	} else {
		var err error
		infos, err = client.QueryBulk(ctx, args)
		if err != nil {
			return err
		}
	}

	if cfg.Format == "table" {
		return renderTable(cmd.OutOrStdout(), infos)
	}
	return renderJSON(cmd.OutOrStdout(), infos)
}

// validateFormat checks the requested output format
func validateFormat(format string) error {
	switch format {
	case "json", "table":
		return nil
	default:
		return ErrUnknownFormat
	}
}

// renderJSON pretty-prints the results with HTML escaping disabled
func renderJSON(w io.Writer, infos []ipquery.IPInfo) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(infos); err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "", "  "); err != nil {
		return err
	}

	_, err := w.Write(pretty.Bytes())
	return err
}

// renderTable prints one row per address. Absent fields render as "-".
func renderTable(w io.Writer, infos []ipquery.IPInfo) error {
	data := pterm.TableData{
		{"IP", "Country", "City", "ISP", "Risk Score"},
	}
	for _, info := range infos {
		data = append(data, tableRow(info))
	}

	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render()
}

func tableRow(info ipquery.IPInfo) []string {
	country, city, isp, risk := "-", "-", "-", "-"

	if info.Location != nil {
		if info.Location.Country != nil {
			country = *info.Location.Country
		}
		if info.Location.City != nil {
			city = *info.Location.City
		}
	}
	if info.ISP != nil && info.ISP.ISP != nil {
		isp = *info.ISP.ISP
	}
	if info.Risk != nil && info.Risk.RiskScore != nil {
		risk = strconv.Itoa(*info.Risk.RiskScore)
	}

	return []string{info.IP, country, city, isp, risk}
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for the ipquery client.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ipquery v%s\n", ipquery.Version)
		fmt.Printf("API endpoint: %s\n", cfg.Endpoint)
	},
}
