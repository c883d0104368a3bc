package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"godis-dict/lib/logger"
)

type DictProperties struct {
	Engine          string  `cfg:"engine" toml:"engine"`
	InitialCapacity int     `cfg:"initial-capacity" toml:"initial-capacity"`
	MinCapacity     int     `cfg:"min-capacity" toml:"min-capacity"`
	LoadFactor      float64 `cfg:"load-factor" toml:"load-factor"`
	GrowthRate      float64 `cfg:"growth-rate" toml:"growth-rate"`
	SmallGrowthRate float64 `cfg:"small-growth-rate" toml:"small-growth-rate"`
	SmallTableLimit int     `cfg:"small-table-limit" toml:"small-table-limit"`
	GrowthRateFloor float64 `cfg:"growth-rate-floor" toml:"growth-rate-floor"`
	GrowthRateStep  float64 `cfg:"growth-rate-step" toml:"growth-rate-step"`
	LogLevel        string  `cfg:"loglevel" toml:"loglevel"`
	LogFile         string  `cfg:"logfile" toml:"logfile"`
}

var Properties *DictProperties

func init() {
	Properties = Default()
}

func Default() *DictProperties {
	return &DictProperties{
		Engine:          "hashtable",
		InitialCapacity: 1024,
		MinCapacity:     1024,
		LoadFactor:      0.60,
		GrowthRate:      2,
		SmallGrowthRate: 5,
		SmallTableLimit: 5000,
		GrowthRateFloor: 1.75,
		GrowthRateStep:  0.05,
		LogLevel:        "info",
	}
}

// SetupConfigProperties 根据扩展名选择解析方式：.toml 使用 TOML，其余按 "key value" 逐行解析
func SetupConfigProperties(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	var p *DictProperties
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		p, err = parseTOML(file)
	} else {
		p, err = parse(file)
	}
	if err != nil {
		return errors.Wrapf(err, "parse config %s", filename)
	}
	Properties = p
	return logger.Setup(p.LoggerSettings())
}

// LoggerSettings 将 logfile 拆分为目录、文件名与扩展名；logfile 为空时只设置级别
func (p *DictProperties) LoggerSettings() *logger.Settings {
	settings := &logger.Settings{Level: p.LogLevel}
	if p.LogFile == "" {
		return settings
	}
	ext := filepath.Ext(p.LogFile)
	settings.Path = filepath.Dir(p.LogFile)
	settings.Name = strings.TrimSuffix(filepath.Base(p.LogFile), ext)
	settings.Ext = strings.TrimPrefix(ext, ".")
	return settings
}

func parseTOML(reader io.Reader) (*DictProperties, error) {
	res := Default()
	if _, err := toml.NewDecoder(reader).Decode(res); err != nil {
		return nil, err
	}
	return res, nil
}

func parse(reader io.Reader) (*DictProperties, error) {
	res := Default()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	fillProperties(res, m)
	return res, nil
}

func fillProperties(p *DictProperties, m map[string]string) {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err == nil {
				fieldVal.SetInt(intV)
			}
		case reflect.Float64:
			floatV, err := strconv.ParseFloat(val, 64)
			if err == nil {
				fieldVal.SetFloat(floatV)
			}
		case reflect.Bool:
			boolV := "yes" == val
			fieldVal.SetBool(boolV)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				sliceV := strings.Split(val, ",")
				fieldVal.Set(reflect.ValueOf(sliceV))
			}
		}
	}
}
