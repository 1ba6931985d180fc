package main

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"git.fiblab.net/sim/tripplanner/router"
)

// loadWithCache 先读cacheDir下的gob缓存，不存在时调用download并写回缓存
// cacheDir为空表示不使用缓存
func loadWithCache(cacheDir string, p *Path, download func() (*router.NetworkDoc, error)) (*router.NetworkDoc, error) {
	if cacheDir == "" {
		return download()
	}
	cachePath := filepath.Join(cacheDir, p.GetCachePath())
	doc, err := readCache(cachePath)
	if err == nil {
		log.Infof("load network %s from cache %s", p, cachePath)
		return doc, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		// 缓存损坏时重新下载
		log.Warnf("ignore broken cache %s: %v", cachePath, err)
	}
	doc, err = download()
	if err != nil {
		return nil, err
	}
	if err := writeCache(cachePath, doc); err != nil {
		log.Warnf("failed to write cache %s: %v", cachePath, err)
	}
	return doc, nil
}

func readCache(path string) (*router.NetworkDoc, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	doc := &router.NetworkDoc{}
	if err := gob.NewDecoder(file).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}
	return doc, nil
}

func writeCache(path string, doc *router.NetworkDoc) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	// 先写临时文件再改名，避免并发读到半个文件
	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(file).Encode(doc); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
