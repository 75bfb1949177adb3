/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oceanfv/gofv/weno"
)

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print exact reconstruction coefficient tables",
	Long: `
Prints the exact rational ENO reconstruction coefficients for every
candidate stencil of the requested order, plus the optimal linear weights,

gofv tables -k 3`,
	Run: func(cmd *cobra.Command, args []string) {
		k, _ := cmd.Flags().GetInt("order")
		fmt.Printf("ENO reconstruction coefficients, order k = %d\n", k)
		for r := -1; r <= k-1; r++ {
			c, err := weno.ENOCoefficients(k, r)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			fmt.Printf("r = %2d: [", r)
			for j, v := range c {
				if j > 0 {
					fmt.Printf(", ")
				}
				fmt.Printf("%s", v.RatString())
			}
			fmt.Printf("]\n")
		}
		gamma, err := weno.OptimalWeights(k)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("optimal weights: [")
		for r, v := range gamma {
			if r > 0 {
				fmt.Printf(", ")
			}
			fmt.Printf("%s", v.RatString())
		}
		fmt.Printf("]\n")
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().IntP("order", "k", 3, "candidate stencil order")
}
