package config

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// Properties understood by the koyomi CLI.
const (
	PropOutputJson = "koyomi.output.json"
	PropDebug      = "koyomi.debug"
)

var (
	vp   = viper.New()
	rwmu sync.RWMutex
)

func init() {
	SetDefProp(PropOutputJson, false)
	SetDefProp(PropDebug, false)
}

// Set value for the prop
func SetProp(prop string, val any) {
	rwmu.Lock()
	defer rwmu.Unlock()
	vp.Set(prop, val)
}

// Set default value for the prop
func SetDefProp(prop string, defVal any) {
	rwmu.Lock()
	defer rwmu.Unlock()
	vp.SetDefault(prop, defVal)
}

// Check whether the prop exists
func HasProp(prop string) bool {
	rwmu.RLock()
	defer rwmu.RUnlock()
	return vp.IsSet(prop)
}

// Get prop as string
func GetPropStr(prop string) string {
	rwmu.RLock()
	defer rwmu.RUnlock()
	return vp.GetString(prop)
}

// Get prop as int
func GetPropInt(prop string) int {
	rwmu.RLock()
	defer rwmu.RUnlock()
	return vp.GetInt(prop)
}

// Get prop as bool
func GetPropBool(prop string) bool {
	rwmu.RLock()
	defer rwmu.RUnlock()
	return vp.GetBool(prop)
}

// Load yaml config from file.
//
// Calling this method overrides previously loaded config.
func LoadConfigFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return LoadConfigFromReader(f)
}

// Load yaml config from io.Reader.
//
// It's the caller's responsibility to close the provided reader.
func LoadConfigFromReader(reader io.Reader) error {
	rwmu.Lock()
	defer rwmu.Unlock()
	vp.SetConfigType("yml")
	return vp.MergeConfig(reader)
}
