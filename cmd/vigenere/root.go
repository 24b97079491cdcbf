package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vigenere/internal/buildinfo"
	"vigenere/internal/cipher"
	"vigenere/internal/trace"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vigenere",
		Short:        "Vigenère cipher encryption, decryption and tracing",
		SilenceUsage: true,
	}
	cmd.AddCommand(newEncryptCmd(), newDecryptCmd(), newTraceCmd(), newVersionCmd())
	return cmd
}

// readMessage assembles the message from positional args, or from the
// command's stdin when no args are given or the single arg is "-".
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return strings.Join(args, " "), nil
}

func newEncryptCmd() *cobra.Command {
	var key string
	c := &cobra.Command{
		Use:   "encrypt [message]",
		Short: "Encrypt a message with a repeating keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			out, err := cipher.Encrypt(msg, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	c.Flags().StringVarP(&key, "key", "k", "", "Keyword (required; non-letters are ignored)")
	_ = c.MarkFlagRequired("key")
	return c
}

func newDecryptCmd() *cobra.Command {
	var key string
	c := &cobra.Command{
		Use:   "decrypt [message]",
		Short: "Decrypt a message encrypted with the same keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			out, err := cipher.Decrypt(msg, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	c.Flags().StringVarP(&key, "key", "k", "", "Keyword used for encryption (required)")
	_ = c.MarkFlagRequired("key")
	return c
}

func newTraceCmd() *cobra.Command {
	var key string
	var plain bool
	c := &cobra.Command{
		Use:   "trace [message]",
		Short: "Show the per-character key alignment and shifts of an encryption",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			tr, err := trace.Build(msg, key)
			if err != nil {
				return err
			}
			th := trace.DefaultTheme()
			if plain {
				th = trace.PlainTheme()
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.Render(th))
			return nil
		},
	}
	c.Flags().StringVarP(&key, "key", "k", "", "Keyword (required; non-letters are ignored)")
	c.Flags().BoolVar(&plain, "plain", false, "Disable terminal styling")
	_ = c.MarkFlagRequired("key")
	return c
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
