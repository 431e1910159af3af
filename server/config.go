package server

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int

	// 单次请求允许的最大网格点数
	MaxGridPoints int

	LogLevel string
}

// LoadConfig 读取 ini 配置，文件不存在时使用默认值
func LoadConfig(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithField("path", path).Warn("配置文件读取错误，使用默认配置: ", err)
		file = ini.Empty()
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	cfg := Config{
		Addr:            file.Section("server").Key("Addr").MustString(":9000"),
		ReadBufferSize:  file.Section("server").Key("ReadBufferSize").MustInt(1024),
		WriteBufferSize: file.Section("server").Key("WriteBufferSize").MustInt(1024),
		MaxGridPoints:   file.Section("server").Key("MaxGridPoints").MustInt(1000000),
		LogLevel:        file.Section("log").Key("Level").MustString("info"),
	}
	log.WithFields(log.Fields{
		"Addr":          cfg.Addr,
		"MaxGridPoints": cfg.MaxGridPoints,
		"LogLevel":      cfg.LogLevel,
	}).Info("加载配置")
	return cfg
}
