package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// MediaInfo 存储音视频的基础信息
type MediaInfo struct {
	Duration float64 `json:"duration"` // 时长（秒）
	Format   string  `json:"format"`
	HasVideo bool    `json:"hasVideo"`
}

// ProbeMedia 将内存中的音视频写入临时文件后用 ffprobe 读取元数据
func ProbeMedia(data []byte, ext string) (*MediaInfo, error) {
	tmp, err := os.CreateTemp("", "answer-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	out, err := ffmpeg.Probe(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}
	return parseProbeOutput(out)
}

func parseProbeOutput(out string) (*MediaInfo, error) {
	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	info := &MediaInfo{Format: result.Format.Format}
	for _, s := range result.Streams {
		if s.CodecType == "video" {
			info.HasVideo = true
			break
		}
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return nil, fmt.Errorf("missing duration in ffprobe output")
	}
	info.Duration = duration
	return info, nil
}
