// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/batch"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/csvfile"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/data"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/units"
)

// csvCmd represents the csv command
var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Convert logger CSV exports",
	Long: `Converts every record of a CSV export. The first column is the timestamp and
is copied unchanged; the other columns hold voltages in V.

The result is written next to the input with "_converted" appended to the
name, replacing any earlier result.`,
}

var csvThermocoupleCmd = &cobra.Command{
	Use:     "thermocouple <file.csv>",
	Aliases: []string{"tc"},
	Short:   "Thermocouples with a fixed reference temperature",
	Long:    `Converts every column as a type T thermocouple with its reference junction at --ref.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    csvThermocouple,
}

var csvDividerCmd = &cobra.Command{
	Use:     "divider <file.csv>",
	Short:   "Pt1000 RTDs in voltage dividers",
	Long:    `Converts every column as the voltage across a Pt1000 in series with --series, powered from --supply.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    csvDivider,
}

var csvPicologCmd = &cobra.Command{
	Use:   "picolog <file.csv>",
	Short: "Thermocouples referenced to an RTD channel",
	Long: `Converts a PicoLog export in which --refField is a Pt1000 voltage divider
measuring the cold-junction temperature. Each record's RTD temperature is used
as the reference for the thermocouple columns in that record and replaces the
reference column's value.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    csvPicolog,
}

func init() {
	RootCmd.AddCommand(csvCmd)
	csvCmd.AddCommand(csvThermocoupleCmd)
	csvCmd.AddCommand(csvDividerCmd)
	csvCmd.AddCommand(csvPicologCmd)

	csvCmd.PersistentFlags().Int("workers", 1, "Records converted concurrently")
	csvCmd.PersistentFlags().Bool("archive", false, "Store converted records in the database")
	csvCmd.PersistentFlags().Bool("publish", false, "Publish converted records to the MQTT broker")
	viper.BindPFlags(csvCmd.PersistentFlags())

	csvThermocoupleCmd.Flags().Float64("ref", 0, "Reference junction temperature (°C)")

	csvDividerCmd.Flags().Float64("series", 1000, "Series resistor value (Ω)")
	csvDividerCmd.Flags().Float64("supply", 2.5, "Divider supply voltage (V)")

	csvPicologCmd.Flags().Float64("series", 1000, "Series resistor value (Ω)")
	csvPicologCmd.Flags().Float64("supply", 2.5, "Divider supply voltage (V)")
	csvPicologCmd.Flags().String("refField", "", "Column holding the reference RTD voltage")
}

func engine() batch.Engine {
	return batch.Engine{Workers: viper.GetInt("workers")}
}

func dividerCircuit() (units.Resistance, units.Voltage) {
	return units.NewResistanceOhms(viper.GetFloat64("series")), units.NewVoltageVolts(viper.GetFloat64("supply"))
}

func csvThermocouple(cmd *cobra.Command, args []string) error {
	ref := viper.GetFloat64("ref")
	return convertFile(cmd, args[0], []string{"converted", refSuffix(ref)}, func(c *batch.Collection) (*batch.Collection, error) {
		return engine().Thermocouple(c, units.NewTemperatureCelsius(ref))
	})
}

// refSuffix formats the reference temperature for the output name. Whole
// numbers keep one decimal place, so 25 gives "25.0".
func refSuffix(ref float64) string {
	s := batch.FormatFloat(ref)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func csvDivider(cmd *cobra.Command, args []string) error {
	series, supply := dividerCircuit()
	return convertFile(cmd, args[0], []string{"converted"}, func(c *batch.Collection) (*batch.Collection, error) {
		return engine().Divider(c, series, supply)
	})
}

func csvPicolog(cmd *cobra.Command, args []string) error {
	series, supply := dividerCircuit()
	field := viper.GetString("refField")
	if field == "" {
		return fmt.Errorf("--refField is required")
	}
	return convertFile(cmd, args[0], []string{"converted"}, func(c *batch.Collection) (*batch.Collection, error) {
		return engine().Picolog(c, field, series, supply)
	})
}

// convertFile reads input, converts it and writes the result. Nothing is
// written unless every record converts.
func convertFile(cmd *cobra.Command, input string, suffix []string, convert func(*batch.Collection) (*batch.Collection, error)) error {
	in, err := csvfile.Read(input)
	if err != nil {
		return err
	}
	jww.DEBUG.Printf("Read %d records with fields %v from %s\n", len(in.Records), in.Fields, input)

	out, err := convert(in)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	path := csvfile.OutputPath(input, suffix...)
	if err := csvfile.Write(path, out); err != nil {
		return err
	}
	jww.INFO.Printf("Converted %d records: %s -> %s\n", len(out.Records), input, path)

	run := uuid.New().String()
	if viper.GetBool("archive") {
		if err := archive(run, out); err != nil {
			return err
		}
	}
	if viper.GetBool("publish") {
		if err := publish(run, out); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func archive(run string, c *batch.Collection) error {
	db, err := data.OpenDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.InsertCollection(run, c); err != nil {
		return err
	}
	jww.INFO.Println("Archived run", run)
	return nil
}
