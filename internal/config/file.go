package config

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seedsearch/ivs"
	"github.com/katalvlaran/seedsearch/nature"
	"github.com/katalvlaran/seedsearch/seed"
	"github.com/katalvlaran/seedsearch/wondercard"
)

// ErrInvalidFile is returned when a criteria file cannot be decoded or
// converted.
var ErrInvalidFile = errors.New("config: invalid criteria file")

// Range is an inclusive register range.
type Range struct {
	Low  uint32 `yaml:"low"`
	High uint32 `yaml:"high" validate:"gtefield=Low"`
}

// FrameRange is an inclusive frame window.
type FrameRange struct {
	Min uint64 `yaml:"min"`
	Max uint64 `yaml:"max" validate:"gtefield=Min"`
}

// HiddenPower is the hidden power filter. An empty Type disables it; "any"
// requires MinPower regardless of type.
type HiddenPower struct {
	Type     string `yaml:"type"`
	MinPower uint32 `yaml:"min_power" validate:"lte=70"`
}

// File is the on-disk form of a WonderCard search.
type File struct {
	Version string    `yaml:"version" validate:"required"`
	MAC     string    `yaml:"mac" validate:"required,mac"`
	From    time.Time `yaml:"from" validate:"required"`
	To      time.Time `yaml:"to" validate:"required,gtefield=From"`
	Buttons []string  `yaml:"buttons" validate:"min=1"`

	Timer0 Range      `yaml:"timer0"`
	VCount Range      `yaml:"vcount"`
	VFrame Range      `yaml:"vframe"`
	Frames FrameRange `yaml:"frames"`

	CanBeShiny bool   `yaml:"can_be_shiny"`
	TID        uint16 `yaml:"tid"`
	SID        uint16 `yaml:"sid"`

	Nature      string      `yaml:"nature"`
	MinIVs      string      `yaml:"min_ivs"`
	MaxIVs      string      `yaml:"max_ivs"`
	HiddenPower HiddenPower `yaml:"hidden_power"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and decodes the criteria file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a criteria file.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return &f, nil
}

// Criteria converts f into a validated wondercard.Criteria.
func (f *File) Criteria() (wondercard.Criteria, error) {
	var c wondercard.Criteria
	var err error

	if c.Version, err = seed.ParseVersion(f.Version); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if c.MACAddress, err = parseMAC(f.MAC); err != nil {
		return c, err
	}
	c.FromTime, c.ToTime = f.From, f.To

	c.ButtonPresses = make([]seed.Buttons, 0, len(f.Buttons))
	for _, s := range f.Buttons {
		b, err := seed.ParseButtons(s)
		if err != nil {
			return c, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
		c.ButtonPresses = append(c.ButtonPresses, b)
	}

	c.Timer0Low, c.Timer0High = f.Timer0.Low, f.Timer0.High
	c.VCountLow, c.VCountHigh = f.VCount.Low, f.VCount.High
	c.VFrameLow, c.VFrameHigh = f.VFrame.Low, f.VFrame.High
	c.MinFrame, c.MaxFrame = f.Frames.Min, f.Frames.Max

	c.CanBeShiny, c.TID, c.SID = f.CanBeShiny, f.TID, f.SID

	if c.Nature, err = nature.Parse(f.Nature); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if f.MinIVs != "" {
		if c.MinIVs, err = ivs.ParseMin(f.MinIVs); err != nil {
			return c, fmt.Errorf("%w: min_ivs: %v", ErrInvalidFile, err)
		}
	}
	if f.MaxIVs != "" {
		if c.MaxIVs, err = ivs.ParseMax(f.MaxIVs); err != nil {
			return c, fmt.Errorf("%w: max_ivs: %v", ErrInvalidFile, err)
		}
		c.ShouldCheckMaxIVs = true
	}
	if c.HiddenType, err = ivs.ParseElement(f.HiddenPower.Type); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	c.MinHiddenPower = f.HiddenPower.MinPower

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// parseMAC packs a 48-bit hardware address into its integer form.
func parseMAC(s string) (uint64, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if len(hw) != 6 {
		return 0, fmt.Errorf("%w: mac %q is not 48 bits", ErrInvalidFile, s)
	}

	var mac uint64
	for _, b := range hw {
		mac = mac<<8 | uint64(b)
	}
	return mac, nil
}
