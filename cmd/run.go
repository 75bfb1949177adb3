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
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/oceanfv/gofv/InputParameters"
	"github.com/oceanfv/gofv/closure"
	"github.com/oceanfv/gofv/model_problems/FreeSurface2D"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the free surface hydrostatic model",
	Long: `
Runs the depth-averaged free surface model from a YAML input file,

gofv run -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ipFile, _ := cmd.Flags().GetString("inputConditionsFile")
		prof, _ := cmd.Flags().GetBool("profile")
		printInterval, _ := cmd.Flags().GetInt("printInterval")
		ip := InputParameters.DefaultParameters()
		if len(ipFile) != 0 {
			var data []byte
			if data, err = os.ReadFile(ipFile); err != nil {
				fmt.Printf("error reading input file: %s\n", err.Error())
				os.Exit(1)
			}
			if err = ip.Parse(data); err != nil {
				fmt.Printf("error parsing input file: %s\n", err.Error())
				os.Exit(1)
			}
		}
		ip.Print()
		if prof {
			defer profile.Start().Stop()
		}
		RunModel(ip, printInterval)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input parameters file")
	runCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
	runCmd.Flags().Int("printInterval", 10, "steps between status lines")
}

func RunModel(ip *InputParameters.SimParameters, printInterval int) {
	bc, err := ip.BoundaryConditions()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	turb := closure.Smagorinsky{
		C:          ip.SmagorinskyConstant,
		Background: ip.BackgroundDiffusivity,
		NP:         ip.Parallelism,
	}
	sim := FreeSurface2D.NewSimulation(ip.Nx, ip.Ny, ip.Dx, ip.Dy,
		ip.Depth, ip.Gravity, ip.CFL, ip.FinalTime, ip.ReconstructionOrder,
		turb, bc, ip.SolverTolerance, ip.SolverMaxIterations, ip.Parallelism)
	// Gaussian surface bump released from rest
	var (
		lx = float64(ip.Nx) * ip.Dx
		ly = float64(ip.Ny) * ip.Dy
	)
	sim.SetInitialState(
		func(x, y float64) float64 {
			r2 := (x-lx/2)*(x-lx/2)/(lx*lx) + (y-ly/2)*(y-ly/2)/(ly*ly)
			return math.Exp(-100 * r2)
		},
		func(x, y float64) float64 { return 0 },
		func(x, y float64) float64 { return 0 },
	)
	sim.Run(printInterval)
}
