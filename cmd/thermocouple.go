// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/thermocouple"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/units"
)

// tcCmd represents the tc command
var tcCmd = &cobra.Command{
	Use:     "tc",
	Aliases: []string{"thermocouple"},
	Short:   "Type T thermocouple conversion",
	Long:    `Converts between type T thermocouple voltage and temperature (NIST).`,
}

var voltageToTemperatureCmd = &cobra.Command{
	Use:     "v2t <millivolts>",
	Short:   "Millivolts to °C",
	Long:    `Converts a measured thermocouple voltage in mV to temperature, compensating for the reference junction temperature.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    voltageToTemperature,
}

var temperatureToVoltageCmd = &cobra.Command{
	Use:     "t2v <celsius>",
	Short:   "°C to millivolts",
	Long:    `Converts a measuring junction temperature to the voltage the thermocouple produces with its reference junction at --ref.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    temperatureToVoltage,
}

func init() {
	RootCmd.AddCommand(tcCmd)
	tcCmd.AddCommand(voltageToTemperatureCmd)
	tcCmd.AddCommand(temperatureToVoltageCmd)

	voltageToTemperatureCmd.Flags().Float64("ref", 0, "Reference junction temperature (°C)")
	temperatureToVoltageCmd.Flags().Float64("ref", 0, "Reference junction temperature (°C)")
	voltageToTemperatureCmd.Flags().String("unit", "°C", "Output unit: C, F or K")
	temperatureToVoltageCmd.Flags().String("unit", "mV", "Output unit: V, mV or uV")
}

func voltageToTemperature(cmd *cobra.Command, args []string) error {
	mv, err := number("voltage", args[0])
	if err != nil {
		return err
	}
	ref := units.NewTemperatureCelsius(viper.GetFloat64("ref"))
	t := thermocouple.TemperatureFromMeasuredVoltage(units.NewVoltageMillivolts(mv), ref)
	return printTemperature(cmd.OutOrStdout(), t)
}

func temperatureToVoltage(cmd *cobra.Command, args []string) error {
	c, err := number("temperature", args[0])
	if err != nil {
		return err
	}
	ref := units.NewTemperatureCelsius(viper.GetFloat64("ref"))
	v := thermocouple.VoltageFromTemperature(units.NewTemperatureCelsius(c), ref)
	return printIn(cmd.OutOrStdout(), "Voltage", v)
}
