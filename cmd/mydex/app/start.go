// Copyright 2023 The go-mydex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clarel-c/go-mydex/log"
	"github.com/clarel-c/go-mydex/node"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the exchange node with config",
	Long: `Start an exchange node with the specified configuration, the node
recovers the ledger, order and event state from the database file of
previous runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile == "" {
			log.Fatal(errors.New("config file not provided"))
		}
		v := viper.New()
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		c, err := node.NewConfig(v)
		if err != nil {
			log.Fatal(err)
		}
		if debug {
			log.OpenDebug()
		}
		n := node.NewNode(c)
		n.Start()
	},
}

var cfgFile string
var debug bool

func init() {
	startCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path of the config file")
	startCmd.MarkFlagRequired("config")
	startCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	rootCmd.AddCommand(startCmd)
}
