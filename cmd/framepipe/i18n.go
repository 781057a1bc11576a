// Package main provides localization for the framepipe CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Assemble videos from raw image frames via ffmpeg.": "ffmpegを介して生の画像フレームから動画を組み立てます。",

		// Demo command
		"Encode a synthetic test pattern video.": "合成テストパターン動画をエンコード",
		"Number of frames to render.":            "描画するフレーム数",

		// Convert command
		"Encode a directory of image frames into a video.":       "画像フレームのディレクトリを動画にエンコード",
		"Directory containing PNG or JPEG frames, fed in name order.": "PNGまたはJPEGフレームを含むディレクトリ（名前順に送出）",

		// Probe command
		"Print a summary of an MP4 file.": "MP4ファイルの概要を表示",
		"MP4 file to inspect.":            "検査するMP4ファイル",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"framepipe version %s":      "framepipe バージョン %s",

		// Common flags
		"Output video file path.":        "出力動画ファイルパス",
		"YAML configuration file.":       "YAML設定ファイル",
		"Frame width (default: 640).":    "フレーム幅（デフォルト: 640）",
		"Frame height (default: 480).":   "フレーム高さ（デフォルト: 480）",
		"Frame rate, e.g. 30 or 30000/1001.": "フレームレート（例: 30, 30000/1001）",
		"Video quality (0-63, lower is better).": "動画品質（0-63、低いほど高品質）",
		"Target bitrate in kbps.":        "目標ビットレート (kbps)",
		"Suppress all log output.":       "すべてのログ出力を抑制",
	})
}
