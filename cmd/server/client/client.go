// Package client provides test commands for the builder gRPC services
package client

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vtm-builder/internal/errors"
	"github.com/KirkDiggler/vtm-builder/internal/handlers/builder/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the builder",
	Long:  `Client commands allow you to exercise the builder by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Character commands
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)
	ClientCmd.AddCommand(updateDisciplinesCmd)

	// Predator type commands
	ClientCmd.AddCommand(listPredatorTypesCmd)
	ClientCmd.AddCommand(openChoiceCmd)
	ClientCmd.AddCommand(setPointsCmd)
	ClientCmd.AddCommand(getSessionCmd)
	ClientCmd.AddCommand(commitChoiceCmd)
	ClientCmd.AddCommand(cancelChoiceCmd)
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

// call invokes one method and prints the response as JSON
func call(cmd *cobra.Command, service, method string, req map[string]any) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	in, err := structpb.NewStruct(req)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out := &structpb.Struct{}
	if err := conn.Invoke(ctx, v1alpha1.FullMethod(service, method), in, out); err != nil {
		return describeError(method, err)
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}

// describeError spells out a failed call: the code and message, then the
// refusal reason, the suggested input and any remaining metadata
func describeError(method string, err error) error {
	decoded := errors.FromGRPCError(err)

	var b strings.Builder
	fmt.Fprintf(&b, "%s failed: %s", method, decoded.Error())
	if reason := errors.GetReason(decoded); reason != "" {
		fmt.Fprintf(&b, "\n  reason: %s", reason)
	}
	if suggestion := errors.GetSuggestion(decoded); suggestion != "" {
		fmt.Fprintf(&b, "\n  did you mean: %s", suggestion)
	}

	meta := errors.GetMeta(decoded)
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		if k == errors.MetaKeyReason || k == errors.MetaKeySuggestion {
			continue
		}
		fmt.Fprintf(&b, "\n  %s: %v", k, meta[k])
	}

	return fmt.Errorf("%s", b.String())
}
