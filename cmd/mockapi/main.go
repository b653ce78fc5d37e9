package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/qdryclean/qadmin/internal/mockapi"
)

func main() {
	addr := flag.String("a", ":8080", "address to listen on")
	secret := flag.String("secret", "mockapi-secret", "token signing secret")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	server, err := mockapi.NewServer(*secret, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed mock api: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting mock api", slog.String("addr", *addr))
	if err := server.Router().Run(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "mock api terminated: %v\n", err)
		os.Exit(1)
	}
}
