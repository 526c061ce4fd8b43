// Package main is the entry point for the portbridge proxy.
//
// It wires the relay engine to the outside world: command-line flags, an
// optional YAML configuration file, logging setup, and signal handling for
// graceful shutdown. The relay itself lives in internal/relay and knows
// nothing about any of this.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"portbridge/internal/config"
	"portbridge/internal/logger"
	"portbridge/internal/relay"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		listenPort = flag.Uint("port", 0, "local port to listen on (overrides config)")
		remote     = flag.String("remote", "", "remote host:port to bridge to (overrides config)")
		logLevel   = flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "portbridge: load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags win over the config file.
	if *listenPort != 0 {
		port, err := listenPortValue(*listenPort)
		if err != nil {
			fmt.Fprintf(os.Stderr, "portbridge: %v\n", err)
			os.Exit(1)
		}
		cfg.Listen.Port = port
	}
	if *remote != "" {
		host, portStr, err := net.SplitHostPort(*remote)
		if err != nil {
			fmt.Fprintf(os.Stderr, "portbridge: -remote must be host:port: %v\n", err)
			os.Exit(1)
		}
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			fmt.Fprintf(os.Stderr, "portbridge: invalid remote port %q\n", portStr)
			os.Exit(1)
		}
		cfg.Remote.Host = host
		cfg.Remote.Port = uint16(port)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger.Init(logger.Config{Level: cfg.Logging.Level})

	server := relay.NewServer(relay.Config{
		LocalPort:  cfg.Listen.Port,
		RemoteHost: cfg.Remote.Host,
		RemotePort: cfg.Remote.Port,
	})
	if err := server.Start(); err != nil {
		logger.Fatal("failed to start", "error", err)
	}

	// Block until a shutdown signal arrives, then quiesce fully before
	// exiting: Stop waits for every in-flight session.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	server.Stop()
}

// listenPortValue validates a -port flag value against the TCP port range.
// A uint flag accepts anything that fits the machine word, so values above
// 65535 must be rejected here rather than silently truncated.
func listenPortValue(v uint) (uint16, error) {
	if v > 65535 {
		return 0, fmt.Errorf("-port must be 1-65535, got %d", v)
	}
	return uint16(v), nil
}
