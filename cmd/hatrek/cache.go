// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hatrek/internal/cache"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered page cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Drop every cached page, e.g. after publishing in the CMS",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.ValkeyEnabled() {
				return errors.New("VALKEY_HOST is not set; there is no page cache to flush")
			}
			client, err := cache.ConnectValkey(cmd.Context(), cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
			if err != nil {
				return err
			}
			defer client.Close()

			n, err := cache.NewPageCache(client, cfg.PageCacheTTL).Flush(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "flushed %d cached pages\n", n)
			return nil
		},
	})
	return cmd
}
