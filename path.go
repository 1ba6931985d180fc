package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path 路网数据源：本地YAML文件或Mongo集合{db}.{col}
type Path struct {
	File string
	DB   string
	Coll string
}

func NewPath(filePathOrColl string) (*Path, error) {
	// 检查filePathOrColl是否作为文件存在
	if _, err := os.Stat(filePathOrColl); err == nil {
		return &Path{
			File: filePathOrColl,
		}, nil
	}
	dbDotColl := strings.TrimSpace(filePathOrColl)
	if dbDotColl == "" {
		return nil, nil
	}
	if ext := filepath.Ext(dbDotColl); ext == ".yaml" || ext == ".yml" {
		return nil, fmt.Errorf("network file not found: %s", dbDotColl)
	}
	splitted := strings.Split(dbDotColl, ".")
	if len(splitted) != 2 || splitted[0] == "" || splitted[1] == "" {
		return nil, fmt.Errorf("dbDotColl is invalid: %s", dbDotColl)
	}
	return &Path{
		DB:   splitted[0],
		Coll: splitted[1],
	}, nil
}

func (p *Path) IsFile() bool {
	return p.File != ""
}

func (p *Path) GetDb() string {
	return p.DB
}

func (p *Path) GetColl() string {
	return p.Coll
}

// 缓存文件名，只有Mongo数据源会写缓存
func (p *Path) GetCachePath() string {
	return p.DB + "." + p.Coll + ".gob"
}

func (p *Path) String() string {
	if p == nil {
		return "<builtin>"
	}
	if p.File != "" {
		// return absolute path
		path, err := filepath.Abs(p.File)
		if err != nil {
			return p.File
		}
		return path
	}
	return p.DB + "." + p.Coll
}
