package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/ClarkGuan/mmlog/internal/config"
	"github.com/ClarkGuan/mmlog/pkg/mmlog"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Default()
	config.FromEnv(&cfg)

	rootCmd := &cobra.Command{
		Use:   "mmlog",
		Short: "mmlog ring log file CLI",
		Long:  "mmlog manages fixed-size memory-mapped ring log files: create, inspect, dump, append.",
	}
	rootCmd.PersistentFlags().StringVar(&cfg.Path, "path", cfg.Path, "Log file path (env MMLOG_PATH)")

	var sizeFlag string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create (or reset) a log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sizeFlag != "" {
				n, err := config.ParseSize(sizeFlag)
				if err != nil {
					return err
				}
				cfg.Size = n
			}
			logger, err := mmlog.NewBuilder().Size(cfg.Size).Build(cfg.Path)
			if err != nil {
				return err
			}
			defer logger.Close()
			fmt.Printf("created %s, capacity %d bytes\n", cfg.Path, logger.Cap())
			return nil
		},
	}
	createCmd.Flags().StringVar(&sizeFlag, "size", "", "Ring capacity, with optional K/M suffix (env MMLOG_SIZE)")
	rootCmd.AddCommand(createCmd)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show capacity, write offset, and fill state",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := mmlog.ReadSnapshot(cfg.Path)
			if err != nil {
				return err
			}
			fmt.Printf("path:     %s\n", cfg.Path)
			fmt.Printf("capacity: %d bytes\n", len(snap.Payload))
			fmt.Printf("offset:   %d\n", snap.Offset)
			fmt.Printf("wrapped:  %v\n", snap.Wrapped())
			return nil
		},
	}
	rootCmd.AddCommand(infoCmd)

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print records oldest-first",
		Long:  "Unrolls the ring and prints complete records oldest-first. On a wrapped ring the torn record at the wrap boundary is skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := mmlog.ReadSnapshot(cfg.Path)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()
			for _, line := range snap.Lines() {
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
	rootCmd.AddCommand(dumpCmd)

	var (
		levelFlag  string
		targetFlag string
	)
	writeCmd := &cobra.Command{
		Use:   "write [message...]",
		Short: "Append records from arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := cfg.Level
			if levelFlag != "" {
				l, err := mmlog.ParseLevel(levelFlag)
				if err != nil {
					return err
				}
				level = l
			}
			// Derive the capacity from the file so opening never resizes
			// a ring created with a different --size.
			fi, err := os.Stat(cfg.Path)
			if err != nil {
				return err
			}
			size := int(fi.Size()) - mmlog.HeaderSize
			if size < 0 {
				return fmt.Errorf("%s is not a mmlog file", cfg.Path)
			}
			logger, err := mmlog.NewBuilder().
				Size(size).
				Level(mmlog.LevelTrace).
				Sync(cfg.Sync).
				Open(cfg.Path)
			if err != nil {
				return err
			}
			defer logger.Close()

			if len(args) > 0 {
				for _, msg := range args {
					logger.Log(level, "", targetFlag, msg)
				}
				return nil
			}
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				logger.Log(level, "", targetFlag, sc.Text())
			}
			return sc.Err()
		},
	}
	writeCmd.Flags().StringVar(&levelFlag, "level", "", "Record level: error|warn|info|debug|trace (env MMLOG_LEVEL)")
	writeCmd.Flags().StringVar(&targetFlag, "target", "cli", "Record target")
	writeCmd.Flags().BoolVar(&cfg.Sync, "sync", cfg.Sync, "Block on flush until durable (env MMLOG_SYNC)")
	rootCmd.AddCommand(writeCmd)

	var (
		benchCount   int
		benchPayload int
	)
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure write throughput against a temporary ring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sizeFlag != "" {
				n, err := config.ParseSize(sizeFlag)
				if err != nil {
					return err
				}
				cfg.Size = n
			}
			path := cfg.Path
			logger, err := mmlog.NewBuilder().Size(cfg.Size).Level(mmlog.LevelTrace).Build(path)
			if err != nil {
				return err
			}
			defer logger.Close()

			msg := make([]byte, benchPayload)
			for i := range msg {
				msg[i] = 'a' + byte(i%26)
			}
			payload := string(msg)

			start := time.Now()
			for i := 0; i < benchCount; i++ {
				logger.Log(mmlog.LevelInfo, "", "bench", payload)
			}
			elapsed := time.Since(start)

			perOp := elapsed / time.Duration(benchCount)
			fmt.Printf("%d writes of %d payload bytes in %v (%v/op)\n",
				benchCount, benchPayload, elapsed, perOp)
			return nil
		},
	}
	benchCmd.Flags().StringVar(&sizeFlag, "size", "", "Ring capacity, with optional K/M suffix")
	benchCmd.Flags().IntVar(&benchCount, "count", 1_000_000, "Number of writes")
	benchCmd.Flags().IntVar(&benchPayload, "payload", 100, "Payload bytes per record")
	rootCmd.AddCommand(benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
