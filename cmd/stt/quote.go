package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/study-tracker/internal/quote"
)

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print today's motivational quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(quote.Daily(time.Now()))
			return nil
		},
	}
}
