package tape

import "fmt"

// Defaults for Config.
const (
	DefaultSlabSize  = 4096
	DefaultAlignment = 8
)

// Config controls the arena backing a Context.
type Config struct {
	SlabSize  int  // Bytes per arena slab. Larger requests get a dedicated slab.
	Alignment int  // Byte alignment of every subcontext buffer. Must be a power of two.
	NoPoison  bool // Skip zero-filling slabs on Destroy; recycled buffers then hold stale bytes.
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		SlabSize:  DefaultSlabSize,
		Alignment: DefaultAlignment,
	}
}

// Validate reports whether cfg describes a usable arena.
func (c Config) Validate() error {
	if c.SlabSize <= 0 {
		return fmt.Errorf("tape: slab size must be positive, got %d", c.SlabSize)
	}
	if c.Alignment <= 0 || c.Alignment&(c.Alignment-1) != 0 {
		return fmt.Errorf("tape: alignment must be a power of two, got %d", c.Alignment)
	}
	return nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.SlabSize == 0 {
		c.SlabSize = DefaultSlabSize
	}
	if c.Alignment == 0 {
		c.Alignment = DefaultAlignment
	}
	return c
}
