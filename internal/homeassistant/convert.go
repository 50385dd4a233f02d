package homeassistant

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/steinerthomas/easy2homeassistant/internal/easy"
)

// Logger receives diagnostic events during conversion. It matches the
// log/slog method set so a *slog.Logger can be used directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Entities groups resolved entities by kind, in output order.
type Entities struct {
	Lights   []Light
	Covers   []Cover
	Sensors  []TemperatureSensor
	Climates []Climate
	Weathers []Weather
}

func (e *Entities) add(entity Entity) {
	switch v := entity.(type) {
	case *Light:
		e.Lights = append(e.Lights, *v)
	case *Cover:
		e.Covers = append(e.Covers, *v)
	case *TemperatureSensor:
		e.Sensors = append(e.Sensors, *v)
	case *Climate:
		e.Climates = append(e.Climates, *v)
	case *Weather:
		e.Weathers = append(e.Weathers, *v)
	}
}

// Total returns the number of entities across all kinds.
func (e *Entities) Total() int {
	return len(e.Lights) + len(e.Covers) + len(e.Sensors) + len(e.Climates) + len(e.Weathers)
}

// Sort orders every collection by entity name. The sort is stable, so
// entities sharing a name keep their conversion order.
func (e *Entities) Sort() {
	sort.SliceStable(e.Lights, func(i, j int) bool { return e.Lights[i].Name < e.Lights[j].Name })
	sort.SliceStable(e.Covers, func(i, j int) bool { return e.Covers[i].Name < e.Covers[j].Name })
	sort.SliceStable(e.Sensors, func(i, j int) bool { return e.Sensors[i].Name < e.Sensors[j].Name })
	sort.SliceStable(e.Climates, func(i, j int) bool { return e.Climates[i].Name < e.Climates[j].Name })
	sort.SliceStable(e.Weathers, func(i, j int) bool { return e.Weathers[i].Name < e.Weathers[j].Name })
}

// Statistics counts what the conversion saw and what it dropped.
type Statistics struct {
	ChannelsSeen       int
	ChannelsEmpty      int
	ChannelsUnmapped   int
	DatapointsMapped   int
	DatapointsUnmapped int
	EntitiesDiscarded  int
}

// Result is the outcome of one project conversion.
type Result struct {
	ConversionID string
	Source       string
	ConvertedAt  time.Time
	Entities     Entities
	Stats        Statistics
}

// Converter resolves easy projects into Home Assistant entities.
type Converter struct {
	logger Logger
}

// NewConverter creates a Converter. Diagnostics are discarded until a
// logger is attached with SetLogger.
func NewConverter() *Converter {
	return &Converter{logger: noopLogger{}}
}

// SetLogger attaches a logger for conversion diagnostics.
func (c *Converter) SetLogger(logger Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Convert resolves every valid channel of the project into a typed entity.
// Channels without datapoints, channels with unmapped icons and entities
// missing required addresses are dropped; none of these abort the run.
func (c *Converter) Convert(source string, project *easy.Project) *Result {
	result := &Result{
		ConversionID: uuid.New().String(),
		Source:       source,
		ConvertedAt:  time.Now().UTC(),
	}

	for _, channel := range project.Channels {
		result.Stats.ChannelsSeen++

		if !channel.Valid() {
			c.logger.Debug("skipping channel without datapoints", "channel", channel.Name)
			result.Stats.ChannelsEmpty++
			continue
		}

		entity := newEntity(project, channel)
		if entity == nil {
			c.logger.Info("skipping channel with unmapped icon",
				"channel", channel.Name, "icon", channel.Icon)
			result.Stats.ChannelsUnmapped++
			continue
		}
		c.logger.Info("resolving channel", "channel", channel.Name, "kind", entity.Kind())

		for _, dp := range channel.Datapoints {
			if !dp.Valid() {
				c.logger.Debug("skipping incomplete datapoint",
					"channel", channel.Name, "datapoint", dp.Name)
				continue
			}
			if entity.applyDatapoint(dp.Name, dp.LowestAddress()) {
				result.Stats.DatapointsMapped++
			} else {
				c.logger.Info("skipping unmapped datapoint",
					"channel", channel.Name, "datapoint", dp.Name)
				result.Stats.DatapointsUnmapped++
			}
		}

		if !entity.Valid() {
			c.logger.Debug("discarding entity with missing required addresses",
				"channel", channel.Name, "kind", entity.Kind())
			result.Stats.EntitiesDiscarded++
			continue
		}
		result.Entities.add(entity)
	}

	return result
}

// newEntity creates the entity matching the channel icon, or nil when the
// icon has no mapping. Climate entities borrow their temperature address
// from the paired sensor channel at creation time.
func newEntity(project *easy.Project, channel easy.Channel) Entity {
	switch KindForIcon(channel.Icon) {
	case KindLight:
		return &Light{Name: channel.Name}
	case KindCover:
		return &Cover{Name: channel.Name}
	case KindTemperatureSensor:
		return &TemperatureSensor{Name: channel.Name}
	case KindClimate:
		return &Climate{
			Name:               channel.Name,
			TemperatureAddress: findSensorAddress(project, channel.SerialNumber),
		}
	case KindWeather:
		return &Weather{Name: channel.Name}
	default:
		return nil
	}
}

// findSensorAddress locates the indoor temperature sensor channel paired
// with a climate channel through the shared product serial number and
// returns its "Indoor temperature" datapoint's lowest group address. A miss
// returns 0 and is left to the entity validity check.
func findSensorAddress(project *easy.Project, serialNumber string) int {
	for _, channel := range project.Channels {
		if channel.Icon != iconIndoorTemperature || channel.SerialNumber != serialNumber {
			continue
		}
		for _, dp := range channel.Datapoints {
			if dp.Name == "Indoor temperature" {
				return dp.LowestAddress()
			}
		}
	}
	return 0
}
