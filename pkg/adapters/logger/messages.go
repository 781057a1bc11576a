package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Session component (debug)
		"Spawning encoder: %s":                         "エンコーダを起動中: %s",
		"Encoder started: pid %d, frame size %d bytes": "エンコーダを起動しました: pid %d, フレームサイズ %d バイト",
		"Encoder found dead before frame %d":           "フレーム %d の前にエンコーダの終了を検出しました",
		"Frame %d write failed: %v":                    "フレーム %d の書き込みに失敗しました: %v",
		"Closing encoder input after %d frames":        "%d フレーム送出後、エンコーダ入力を閉じています",
		"Encoder exited with status %d":                "エンコーダが終了コード %d で終了しました",
		"Encoder finished: %s":                         "エンコードが完了しました: %s",
		"Abandoning session after %d frames":           "%d フレーム送出後、セッションを中断します",
		"Failed to save debug invocation: %v":          "デバッグ用コマンドラインの保存に失敗しました: %v",
		"Failed to save debug frame %d: %v":            "デバッグ用フレーム %d の保存に失敗しました: %v",
		"Failed to save encoder diagnostics: %v":       "エンコーダ診断出力の保存に失敗しました: %v",

		// ffmpeg component (debug)
		"Started %s (pid %d)": "%s を開始しました (pid %d)",

		// CLI level messages (info)
		"Encoding %d frames at %dx%d...": "%d フレームを %dx%d でエンコード中...",
		"Rendering frame %d/%d":          "フレーム %d/%d を描画中",
		"Output saved to %s":             "出力を %s に保存しました",
		"Interrupted, shutting down...":  "中断されました。シャットダウン中...",
	})
}
