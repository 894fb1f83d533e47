// Package client provides commands that talk to a running army-rater server
package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
	"github.com/KirkDiggler/army-rater/internal/services/report"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Shared request flags
	armyID   string
	gameSize int
	filePath string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the army-rater service",
	Long:  `Client commands drive a running army-rater server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(scoreCmd)
	ClientCmd.AddCommand(thresholdsCmd)

	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(setCountCmd)

	ClientCmd.AddCommand(exportCmd)
	ClientCmd.AddCommand(importCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// call invokes method with req and decodes the reply into out
func call(method string, req map[string]any, out any) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	in, err := structpb.NewStruct(req)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}

	resp, err := v1alpha1.NewArmyServiceClient(conn).Call(ctx, method, in)
	if err != nil {
		return describe(method, errors.FromGRPCError(err))
	}
	if out == nil {
		return nil
	}
	return v1alpha1.FromStruct(resp, out)
}

// describe adds per-field validation messages to a failed call
func describe(method string, err error) error {
	fields, ok := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
	if !ok {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	v := &errors.ValidationError{Fields: fields}
	return fmt.Errorf("%s failed: %s", method, v.Error())
}

// readUnits loads a JSON or YAML army file
func readUnits(path string) ([]army.Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return interchange.New().Decode(data, interchange.DetectFormat(path, data))
}

func unitsValue(units []army.Unit) (any, error) {
	v, err := v1alpha1.UnitsToValue(units)
	if err != nil {
		return nil, err
	}
	return v.AsInterface(), nil
}

// armyReply is the decoded form of every army-returning method
type armyReply struct {
	Army   *army.Army     `json:"army"`
	Report *engine.Report `json:"report"`
	Index  *int           `json:"index"`
}

func printReport(units []army.Unit, rep *engine.Report) error {
	text, err := report.NewText(&report.TextConfig{})
	if err != nil {
		return err
	}
	return text.Render(os.Stdout, units, rep)
}

func printArmy(reply *armyReply) error {
	fmt.Printf("Army %s (%s)\n\n", reply.Army.Name, reply.Army.ID)
	return printReport(reply.Army.Units, reply.Report)
}
