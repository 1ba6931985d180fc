package router

import (
	"fmt"

	"git.fiblab.net/sim/tripplanner/router/algo"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// DecodeNetwork parses a YAML network document.
func DecodeNetwork(data []byte) (*NetworkDoc, error) {
	doc := &NetworkDoc{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode network: %w", err)
	}
	if len(doc.Locations) == 0 {
		return nil, fmt.Errorf("decode network: no locations")
	}
	return doc, nil
}

func EncodeNetwork(doc *NetworkDoc) ([]byte, error) {
	return yaml.Marshal(doc)
}

// 将文档中的字符串id与模式转换为只读图
func buildGraph(doc *NetworkDoc) (*algo.Graph, error) {
	vertices := make([]*algo.Vertex, 0, len(doc.Locations))
	for _, loc := range doc.Locations {
		edges := make([]algo.Edge, 0, len(loc.Edges))
		for i, e := range loc.Edges {
			mode, err := algo.ModeFromString(e.Mode)
			if err != nil {
				return nil, fmt.Errorf("location %s edge %d: %w", loc.ID, i, err)
			}
			edges = append(edges, algo.NewEdge(algo.Location(e.To), mode, e.Travel, e.Wait, e.Cost, e.Hassle))
		}
		vertices = append(vertices, algo.NewVertex(algo.Location(loc.ID), edges...))
	}
	g, err := algo.NewGraph(vertices...)
	if err != nil {
		return nil, err
	}
	// 统计各交通方式的边数，便于排查数据
	byMode := lo.MapValues(lo.GroupBy(lo.FlatMap(doc.Locations, func(l LocationDoc, _ int) []EdgeDoc {
		return l.Edges
	}), func(e EdgeDoc) string { return e.Mode }), func(es []EdgeDoc, _ string) int { return len(es) })
	log.Debugf("network %s: %d locations, %d edges, by mode %v", doc.Name, g.VertexCount(), g.EdgeCount(), byMode)
	return g, nil
}
