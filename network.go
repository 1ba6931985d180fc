package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"git.fiblab.net/general/common/v2/mongoutil"
	"git.fiblab.net/sim/tripplanner/router"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MONGO_TIMEOUT = 30 * time.Second

// loadNetwork 按数据源读取路网：nil为内置示例路网，文件为YAML，否则从Mongo下载
func loadNetwork(mongoURI string, p *Path, cacheDir string) (*router.NetworkDoc, error) {
	if p == nil {
		log.Info("no network given, use the builtin sample network")
		return router.SampleNetwork(), nil
	}
	if p.IsFile() {
		return readNetworkFile(p.File)
	}
	return loadWithCache(cacheDir, p, func() (*router.NetworkDoc, error) {
		if mongoURI == "" {
			return nil, fmt.Errorf("mongo uri is required to load %s", p)
		}
		client := mongoutil.NewClient(mongoURI)
		defer client.Disconnect(context.Background())
		ctx, cancel := context.WithTimeout(context.Background(), MONGO_TIMEOUT)
		defer cancel()
		return downloadNetwork(ctx, mongoutil.GetMongoColl(client, p), p.String())
	})
}

func readNetworkFile(path string) (*router.NetworkDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network file: %w", err)
	}
	doc, err := router.DecodeNetwork(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = path
	}
	return doc, nil
}

// downloadNetwork 集合中每条文档为一个地点，按_id排序保证建图顺序稳定
func downloadNetwork(ctx context.Context, coll *mongo.Collection, name string) (*router.NetworkDoc, error) {
	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("download network %s: %w", name, err)
	}
	doc := &router.NetworkDoc{Name: name}
	if err := cursor.All(ctx, &doc.Locations); err != nil {
		return nil, fmt.Errorf("download network %s: %w", name, err)
	}
	if len(doc.Locations) == 0 {
		return nil, fmt.Errorf("download network %s: collection is empty", name)
	}
	log.Infof("downloaded %d locations from %s", len(doc.Locations), name)
	return doc, nil
}
