package router

// NetworkDoc 路网文档，YAML文件与Mongo集合共用同一结构
// Mongo中每个地点为一条文档，Name取自集合名
type NetworkDoc struct {
	Name      string        `yaml:"name" bson:"name"`
	Locations []LocationDoc `yaml:"locations" bson:"locations"`
}

type LocationDoc struct {
	ID    string    `yaml:"id" bson:"_id"`
	Edges []EdgeDoc `yaml:"edges,omitempty" bson:"edges"`
}

// EdgeDoc 一条有向边，时间单位为分钟
type EdgeDoc struct {
	To     string  `yaml:"to" bson:"to"`
	Mode   string  `yaml:"mode" bson:"mode"`
	Travel int     `yaml:"travel" bson:"travel"`
	Wait   int     `yaml:"wait" bson:"wait"`
	Cost   float64 `yaml:"cost" bson:"cost"`
	Hassle int     `yaml:"hassle" bson:"hassle"`
}

func (d *NetworkDoc) EdgeCount() int {
	n := 0
	for _, loc := range d.Locations {
		n += len(loc.Edges)
	}
	return n
}
