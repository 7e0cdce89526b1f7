// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/batch"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/rtd"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/units"
)

// rtdCmd represents the rtd command
var rtdCmd = &cobra.Command{
	Use:   "rtd",
	Short: "Pt1000 RTD conversion",
	Long:  `Converts Pt1000 RTD resistance to temperature (ITS-90).`,
}

var resistanceToTemperatureCmd = &cobra.Command{
	Use:     "r2t <ohms>",
	Short:   "Ohms to °C",
	Long:    `Converts a Pt1000 resistance to temperature.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    resistanceToTemperature,
}

var dividerCmd = &cobra.Command{
	Use:   "divider <volts>",
	Short: "RTD in a voltage divider",
	Long: `Converts the voltage measured across a Pt1000 wired in series with a
fixed resistor to resistance and temperature.

  supply ---[ series ]---+---[ Pt1000 ]--- GND
                         measured`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    rtdDivider,
}

func init() {
	RootCmd.AddCommand(rtdCmd)
	rtdCmd.AddCommand(resistanceToTemperatureCmd)
	rtdCmd.AddCommand(dividerCmd)

	resistanceToTemperatureCmd.Flags().Bool("cvd", false, "Use the full Callendar-Van Dusen equation, valid below 0 °C")
	dividerCmd.Flags().Bool("cvd", false, "Use the full Callendar-Van Dusen equation, valid below 0 °C")
	dividerCmd.Flags().Float64("series", 1000, "Series resistor value (Ω)")
	dividerCmd.Flags().Float64("supply", 2.5, "Divider supply voltage (V)")
	resistanceToTemperatureCmd.Flags().String("unit", "°C", "Output unit: C, F or K")
	dividerCmd.Flags().String("unit", "°C", "Output unit: C, F or K")
}

func rtdTemperature(r units.Resistance) (units.Temperature, error) {
	if viper.GetBool("cvd") {
		return rtd.ResistanceToTemperatureCVD(r)
	}
	if r.Ohms() < rtd.R0 {
		jww.WARN.Println("Resistance below R0, result is only valid with --cvd")
	}
	return rtd.ResistanceToTemperature(r)
}

func resistanceToTemperature(cmd *cobra.Command, args []string) error {
	ohms, err := number("resistance", args[0])
	if err != nil {
		return err
	}
	t, err := rtdTemperature(units.NewResistanceOhms(ohms))
	if err != nil {
		return err
	}
	return printTemperature(cmd.OutOrStdout(), t)
}

func rtdDivider(cmd *cobra.Command, args []string) error {
	v, err := number("voltage", args[0])
	if err != nil {
		return err
	}
	r, err := rtd.ResistanceFromVoltageDivider(
		units.NewVoltageVolts(v),
		units.NewVoltageVolts(viper.GetFloat64("supply")),
		units.NewResistanceOhms(viper.GetFloat64("series")),
	)
	if err != nil {
		return err
	}
	t, err := rtdTemperature(r)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Resistance:", batch.FormatFloat(r.Ohms()), "Ω")
	return printTemperature(cmd.OutOrStdout(), t)
}
