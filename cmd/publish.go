// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"encoding/json"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/batch"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/data"
)

// publish sends one JSON data.Sample per converted record.
func publish(run string, c *batch.Collection) error {
	samples, err := data.NewSamples(run, c)
	if err != nil {
		return err
	}

	opts := MQTT.NewClientOptions().AddBroker(viper.GetString("broker")).SetClientID("picolog-" + run).SetCleanSession(true)
	client := MQTT.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)

	topic := viper.GetString("topic")
	for _, s := range samples {
		payload, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if token := client.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
			return token.Error()
		}
		jww.DEBUG.Printf("Publishing %s -> %s\n", topic, payload)
	}
	jww.INFO.Printf("Published %d records to %s\n", len(samples), topic)
	return nil
}
