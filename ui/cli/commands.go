// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/fxconsole/core/model"
	"github.com/toeirei/fxconsole/core/state"
	"github.com/toeirei/fxconsole/internal/i18n"
)

// newStore wires a headless store against the configured API. The returned
// func closes the client.
func newStore(opts state.Options) (*state.Store, func(), error) {
	c, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	return state.NewStore(c, opts), func() { c.Close(context.Background()) }, nil
}

func newCurrenciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List and add currencies",
	}
	cmd.AddCommand(newCurrenciesListCmd(), newCurrenciesAddCmd())
	return cmd
}

func newCurrenciesListCmd() *cobra.Command {
	var page, size int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := stateOptions()
			if cmd.Flags().Changed("size") {
				if !slices.Contains(opts.PageSizes, size) {
					return errors.New(i18n.T("cli.invalid_page_size", size, opts.PageSizes))
				}
				opts.PageSize = size
			}

			store, closeFn, err := newStore(opts)
			if err != nil {
				return err
			}
			defer closeFn()

			// a single load at the requested page and size
			st := store.Dispatch(cmd.Context(), state.SetPageNumber{PageNumber: page})
			if st.Currencies.Error != "" {
				return errors.New(st.Currencies.Error)
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, i18n.T("cli.currency_header"))
			for _, c := range st.Currencies.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Code, c.Sign, c.FullName)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out, i18n.T("cli.page_summary", st.Pager.PageNumber, st.Pager.TotalPages(), st.Pager.Total))
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&size, "size", state.DefaultPageSize, "Page size")
	return cmd
}

func newCurrenciesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add CODE FULL_NAME SIGN",
		Short: "Add a currency",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := newStore(stateOptions())
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := cmd.Context()
			store.Dispatch(ctx, state.EditCurrencyForm{Form: model.CurrencyForm{
				Code:     args[0],
				FullName: args[1],
				Sign:     args[2],
			}})
			st := store.Dispatch(ctx, state.SubmitCurrency{})
			if st.Currencies.Message == "" {
				return errors.New(st.Currencies.Error)
			}
			// the follow-up reload may fail without undoing the create
			fmt.Fprintln(cmd.OutOrStdout(), st.Currencies.Message)
			return nil
		},
	}
}

func newRatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Manage exchange rates",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add BASE TARGET RATE",
		Short: "Create an exchange rate",
		Long: `Create the exchange rate from BASE to TARGET. RATE may use a comma as
decimal separator; it is cut to six decimals before it is sent.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := newStore(stateOptions())
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := cmd.Context()
			store.Dispatch(ctx, state.EditRateForm{Form: model.RateForm{
				BaseCode:   args[0],
				TargetCode: args[1],
				Rate:       args[2],
			}})
			st := store.Dispatch(ctx, state.SubmitRate{})
			if st.Rate.Error != "" {
				return errors.New(st.Rate.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Rate.Message)
			return nil
		},
	})
	return cmd
}

func newExchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange BASE TARGET AMOUNT",
		Short: "Convert an amount between two currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := newStore(stateOptions())
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := cmd.Context()
			st := store.Dispatch(ctx, state.EditExchangeForm{Form: model.ExchangeForm{
				Base:   args[0],
				Target: args[1],
				Amount: args[2],
			}})
			st = store.Dispatch(ctx, state.SubmitExchange{})
			if st.Exchange.Error != "" {
				return errors.New(st.Exchange.Error)
			}
			form := st.Exchange.Form
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.exchange_result", form.Amount, form.Base, st.Exchange.ResultLabel()))
			return nil
		},
	}
}
