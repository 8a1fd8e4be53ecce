package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RunBeltScript runs a belt layout script and returns the bands it defines in
// its `bands` global. The script sees `level` (the level name).
func RunBeltScript(name, level string) ([]BeltBand, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return runBeltSource(src, level)
}

func runBeltSource(src []byte, level string) ([]BeltBand, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("level", level); err != nil {
		return nil, err
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("prefabs: run belt script: %w", err)
	}

	v := compiled.Get("bands")
	if v == nil || v.IsUndefined() {
		return nil, fmt.Errorf("%w: belt script defines no 'bands'", ErrInvalidSpec)
	}
	raw, ok := v.Value().([]any)
	if !ok {
		return nil, fmt.Errorf("%w: belt script 'bands' must be an array", ErrInvalidSpec)
	}

	bands := make([]BeltBand, 0, len(raw))
	for i, item := range raw {
		band, err := DecodeComponentSpec[BeltBand](item)
		if err != nil {
			return nil, fmt.Errorf("prefabs: belt band %d: %w", i, err)
		}
		if band.Count < 0 || band.MaxDistance < band.MinDistance || band.MaxSpeed < band.MinSpeed {
			return nil, fmt.Errorf("%w: belt band %d out of range", ErrInvalidSpec, i)
		}
		bands = append(bands, band)
	}
	return bands, nil
}
