package main

import (
	"encoding/json"
	"fmt"
)

// jsonCodec 让connect直接收发普通Go结构体（无需protobuf生成代码）
// 名称与connect内置的json编解码器相同，注册后会覆盖内置实现
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
