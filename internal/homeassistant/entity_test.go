package homeassistant

import "testing"

func TestKindForIcon(t *testing.T) {
	tests := []struct {
		icon     string
		expected Kind
	}{
		{"icon-shutter", KindCover},
		{"icon-light", KindLight},
		{"icon-dimmer", KindLight},
		{"icon-indoor_temperature", KindTemperatureSensor},
		{"icon-heat_regul", KindClimate},
		{"icon-day_night", KindWeather},
		{"icon-undefined", KindNone},
		{"icon-socket", KindNone},
		{"", KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			if got := KindForIcon(tt.icon); got != tt.expected {
				t.Errorf("KindForIcon(%q) = %v, want %v", tt.icon, got, tt.expected)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindLight, "light"},
		{KindCover, "cover"},
		{KindTemperatureSensor, "sensor"},
		{KindClimate, "climate"},
		{KindWeather, "weather"},
		{KindNone, "none"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestApplyDatapointMappings(t *testing.T) {
	tests := []struct {
		kind   Kind
		mapped []string
	}{
		{KindLight, []string{
			"On/Off", "Dim value", "On/Off status", "Dim value status",
		}},
		{KindCover, []string{
			"Up/Down", "Step/Stop", "Position control", "Slat angle control",
			"Position control status", "Slat angle control status",
		}},
		{KindTemperatureSensor, []string{
			"Indoor temperature",
		}},
		{KindClimate, []string{
			"Room temperature", "Setpoint shift", "Setpoint shift status",
			"Mode", "Mode status", "Heat/Cool", "Heat/Cool status", "On/Off",
		}},
		{KindWeather, []string{
			"Outdoor temperature", "Wind speed", "Rain alarm", "Frost alarm",
			"Wind alarm 1", "Day/Night",
		}},
	}

	newByKind := func(kind Kind) Entity {
		switch kind {
		case KindLight:
			return &Light{}
		case KindCover:
			return &Cover{}
		case KindTemperatureSensor:
			return &TemperatureSensor{}
		case KindClimate:
			return &Climate{}
		default:
			return &Weather{}
		}
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			entity := newByKind(tt.kind)
			for _, name := range tt.mapped {
				if !entity.applyDatapoint(name, 7) {
					t.Errorf("applyDatapoint(%q) = false, want true", name)
				}
			}
			if entity.applyDatapoint("No such datapoint", 7) {
				t.Error(`applyDatapoint("No such datapoint") = true, want false`)
			}
		})
	}
}

func TestLightApplyDatapoint(t *testing.T) {
	light := &Light{Name: "Living Room"}

	light.applyDatapoint("On/Off", 12)
	light.applyDatapoint("Dim value", 13)
	light.applyDatapoint("On/Off status", 34)
	light.applyDatapoint("Dim value status", 35)

	if light.Address != 12 || light.StateAddress != 34 {
		t.Errorf("addresses = %d/%d, want 12/34", light.Address, light.StateAddress)
	}
	if light.BrightnessAddress == nil || *light.BrightnessAddress != 13 {
		t.Errorf("brightness address = %v, want 13", light.BrightnessAddress)
	}
	if light.BrightnessStateAddress == nil || *light.BrightnessStateAddress != 35 {
		t.Errorf("brightness state address = %v, want 35", light.BrightnessStateAddress)
	}
}

func TestApplyDatapointIdempotent(t *testing.T) {
	light := &Light{Name: "Living Room"}

	light.applyDatapoint("On/Off", 12)
	light.applyDatapoint("On/Off", 12)
	light.applyDatapoint("Dim value", 13)
	light.applyDatapoint("Dim value", 13)

	if light.Address != 12 {
		t.Errorf("address = %d, want 12", light.Address)
	}
	if light.BrightnessAddress == nil || *light.BrightnessAddress != 13 {
		t.Errorf("brightness address = %v, want 13", light.BrightnessAddress)
	}
}

func TestClimateApplyDatapointIgnoresIndoorTemperature(t *testing.T) {
	climate := &Climate{Name: "Bedroom"}

	if climate.applyDatapoint("Indoor temperature", 5) {
		t.Error(`applyDatapoint("Indoor temperature") = true, want false`)
	}
	if climate.TemperatureAddress != 0 {
		t.Errorf("temperature address = %d, want 0 (sensor lookup only)",
			climate.TemperatureAddress)
	}
}

func TestLightValid(t *testing.T) {
	brightness := 13
	tests := []struct {
		name     string
		light    Light
		expected bool
	}{
		{"complete", Light{Name: "L", Address: 12, StateAddress: 34}, true},
		{"with optionals", Light{Name: "L", Address: 12, StateAddress: 34, BrightnessAddress: &brightness}, true},
		{"missing state address", Light{Name: "L", Address: 12}, false},
		{"missing address", Light{Name: "L", StateAddress: 34}, false},
		{"unnamed", Light{Address: 12, StateAddress: 34}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.light.Valid(); got != tt.expected {
				t.Errorf("Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCoverValid(t *testing.T) {
	complete := Cover{
		Name:                 "Kitchen Blind",
		MoveLongAddress:      40,
		StopAddress:          41,
		PositionAddress:      42,
		AngleAddress:         43,
		PositionStateAddress: 44,
		AngleStateAddress:    45,
	}
	if !complete.Valid() {
		t.Error("fully wired cover should be valid")
	}

	missing := complete
	missing.AngleStateAddress = 0
	if missing.Valid() {
		t.Error("cover missing an address should be invalid")
	}

	unnamed := complete
	unnamed.Name = ""
	if unnamed.Valid() {
		t.Error("unnamed cover should be invalid")
	}
}

func TestTemperatureSensorValid(t *testing.T) {
	if !(TemperatureSensor{Name: "Hallway", StateAddress: 5}).Valid() {
		t.Error("sensor with state address should be valid")
	}
	if (TemperatureSensor{Name: "Hallway"}).Valid() {
		t.Error("sensor without state address should be invalid")
	}
}

func TestClimateValid(t *testing.T) {
	tests := []struct {
		name     string
		climate  Climate
		expected bool
	}{
		{"complete", Climate{Name: "Bedroom", TemperatureAddress: 5, TargetTemperatureStateAddress: 61}, true},
		{"sensor lookup missed", Climate{Name: "Bedroom", TargetTemperatureStateAddress: 61}, false},
		{"missing target state", Climate{Name: "Bedroom", TemperatureAddress: 5}, false},
		{"unnamed", Climate{TemperatureAddress: 5, TargetTemperatureStateAddress: 61}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.climate.Valid(); got != tt.expected {
				t.Errorf("Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWeatherValid(t *testing.T) {
	if !(Weather{Name: "Roof", AddressTemperature: 70}).Valid() {
		t.Error("weather with outdoor temperature should be valid")
	}
	if (Weather{Name: "Roof"}).Valid() {
		t.Error("weather without outdoor temperature should be invalid")
	}
}
