package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravodash/hal"
)

type fakeChannel struct {
	name string
	raw  uint16
	err  error
}

func (c *fakeChannel) Name() string          { return c.name }
func (c *fakeChannel) Max() uint16           { return 1023 }
func (c *fakeChannel) Read() (uint16, error) { return c.raw, c.err }

type fakeADC []*fakeChannel

func (a fakeADC) ChannelCount() int { return len(a) }

func (a fakeADC) Channel(id int) hal.ADCChannel {
	if id < 0 || id >= len(a) {
		return nil
	}
	return a[id]
}

func TestConversions(t *testing.T) {
	assert.Equal(t, 0.0, CoolantFromRaw(0))
	assert.InDelta(t, 90.33, CoolantFromRaw(185), 0.01)
	assert.Equal(t, 150.0, CoolantFromRaw(1023), "limited to the sensor range")

	assert.Equal(t, 0.0, FuelFromRaw(0))
	assert.Equal(t, 9.0, FuelFromRaw(100), "whole percent, truncated")
	assert.Equal(t, 100.0, FuelFromRaw(1023))
	assert.Equal(t, 100.0, FuelFromRaw(4000))

	assert.InDelta(t, 6.6, BatteryFromRaw(4095), 1e-9)
	assert.InDelta(t, 3.3, BatteryFromRaw(2048), 0.01)
}

func TestAnalogPollerPublishesReadings(t *testing.T) {
	coolant := &fakeChannel{name: "COOLANT", raw: 185}
	fuel := &fakeChannel{name: "FUEL", raw: 512}
	batt := &fakeChannel{name: "VBATT", raw: 3723}
	store := NewStore(Snapshot{OilWarning: true})

	p, err := NewAnalogPoller(store, fakeADC{coolant, fuel, batt}, []AnalogWiring{
		{Input: Coolant, Channel: "COOLANT"},
		{Input: Fuel, Channel: "FUEL"},
		{Input: Battery, Channel: "VBATT"},
	})
	require.NoError(t, err)
	require.NoError(t, p.Poll())

	got := store.Snapshot()
	assert.InDelta(t, 90.33, got.CoolantTemp, 0.01)
	assert.Equal(t, 50.0, got.FuelLevel)
	assert.InDelta(t, 6.0, got.BatteryVoltage, 0.01)
	assert.True(t, got.OilWarning, "switch flags are untouched")
}

func TestAnalogPollerKeepsValueOnReadError(t *testing.T) {
	coolant := &fakeChannel{name: "COOLANT", err: errors.New("conversion timeout")}
	fuel := &fakeChannel{name: "FUEL", raw: 1023}
	store := NewStore(Snapshot{CoolantTemp: 88})

	p, err := NewAnalogPoller(store, fakeADC{coolant, fuel}, []AnalogWiring{
		{Input: Coolant, Channel: "COOLANT"},
		{Input: Fuel, Channel: "FUEL"},
	})
	require.NoError(t, err)

	err = p.Poll()
	assert.ErrorContains(t, err, "coolant: conversion timeout")
	assert.Equal(t, 88.0, store.Snapshot().CoolantTemp)
	assert.Equal(t, 100.0, store.Snapshot().FuelLevel)
}

func TestNewAnalogPollerErrors(t *testing.T) {
	adc := fakeADC{{name: "FUEL"}}

	_, err := NewAnalogPoller(nil, adc, nil)
	assert.Error(t, err)

	_, err = NewAnalogPoller(NewStore(Snapshot{}), nil, nil)
	assert.ErrorIs(t, err, hal.ErrNotImplemented)

	_, err = NewAnalogPoller(NewStore(Snapshot{}), adc, []AnalogWiring{{Input: Coolant, Channel: "COOLANT"}})
	assert.ErrorContains(t, err, `channel "COOLANT" not found`)

	_, err = NewAnalogPoller(NewStore(Snapshot{}), adc, []AnalogWiring{{Input: Analog(7), Channel: "FUEL"}})
	assert.ErrorContains(t, err, "analog(7)")
}
