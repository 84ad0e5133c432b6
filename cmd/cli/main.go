package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gowallet-cli",
		Short: "GoWallet CLI tool",
		Long:  `A command line interface for interacting with the GoWallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoWallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
	}

	var (
		ownerID  string
		currency string
		amount   int64
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a wallet",
		Run: func(cmd *cobra.Command, args []string) {
			body := fmt.Sprintf(`{"owner_id":%q,"currency":%q}`, ownerID, currency)
			doRequest(http.MethodPost, "/api/v1/wallets", body)
		},
	}
	createCmd.Flags().StringVar(&ownerID, "owner", "", "Owner id (UUID)")
	createCmd.Flags().StringVar(&currency, "currency", "USD", "Wallet currency (ISO 4217)")
	createCmd.MarkFlagRequired("owner")

	getCmd := &cobra.Command{
		Use:   "get <wallet-id>",
		Short: "Show a wallet's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/wallets/"+args[0], "")
		},
	}

	creditCmd := &cobra.Command{
		Use:   "credit <wallet-id>",
		Short: "Credit a wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := fmt.Sprintf(`{"amount":%d,"currency":%q}`, amount, currency)
			doRequest(http.MethodPost, "/api/v1/wallets/"+args[0]+"/credit", body)
		},
	}
	creditCmd.Flags().Int64Var(&amount, "amount", 0, "Amount in minor units (positive)")
	creditCmd.Flags().StringVar(&currency, "currency", "USD", "Payment currency")
	creditCmd.MarkFlagRequired("amount")

	debitCmd := &cobra.Command{
		Use:   "debit <wallet-id>",
		Short: "Debit a wallet",
		Long:  `Debit a wallet. The amount is negative; a proportional transaction fee is charged on top.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := fmt.Sprintf(`{"amount":%d,"currency":%q}`, amount, currency)
			doRequest(http.MethodPost, "/api/v1/wallets/"+args[0]+"/debit", body)
		},
	}
	debitCmd.Flags().Int64Var(&amount, "amount", 0, "Amount in minor units (negative)")
	debitCmd.Flags().StringVar(&currency, "currency", "USD", "Payment currency")
	debitCmd.MarkFlagRequired("amount")

	walletCmd.AddCommand(createCmd, getCmd, creditCmd, debitCmd)
	rootCmd.AddCommand(walletCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path, body string) {
	client := &http.Client{Timeout: timeout}

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var pretty map[string]any
	if err := json.Unmarshal(respBody, &pretty); err != nil {
		fmt.Println(string(respBody))
		return
	}

	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}
