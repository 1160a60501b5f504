package config

const (
	defaultOutputDir          = "~/.local/share/subweave/output"
	defaultWorkDir            = "~/.local/share/subweave/work"
	defaultLogDir             = "~/.local/share/subweave/logs"
	defaultGroqBaseURL        = "https://api.groq.com/openai/v1"
	defaultTranscriptionModel = "whisper-large-v3"
	defaultTranslationModel   = "gemma2-9b-it"
	defaultSourceLanguage     = "en"
	defaultTargetLanguage     = "he"
	defaultFontName           = "Noto Sans Hebrew"
	defaultFontSize           = 28
	defaultMaxWidthRatio      = 0.9
	defaultHPadding           = 20
	defaultVPadding           = 8
	defaultStrokeWidth        = 2
	defaultBottomMargin       = 40
	defaultClipMaxSeconds     = 300
	defaultFFmpegBinary       = "ffmpeg"
	defaultFFprobeBinary      = "ffprobe"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// defaultFontPaths is the documented fallback order: a bundled resource
// location first, then common OS font paths for the default Hebrew face.
var defaultFontPaths = []string{
	"fonts/NotoSansHebrew-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansHebrew-Regular.ttf",
	"/usr/share/fonts/noto/NotoSansHebrew-Regular.ttf",
	"/System/Library/Fonts/Supplemental/NewPeninimMT.ttc",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			WorkDir:   defaultWorkDir,
			LogDir:    defaultLogDir,
		},
		Groq: Groq{
			BaseURL:            defaultGroqBaseURL,
			TranscriptionModel: defaultTranscriptionModel,
			TranslationModel:   defaultTranslationModel,
		},
		Languages: Languages{
			Source: defaultSourceLanguage,
			Target: defaultTargetLanguage,
		},
		Subtitles: Subtitles{
			FontPaths:     append([]string(nil), defaultFontPaths...),
			FontName:      defaultFontName,
			FontSize:      defaultFontSize,
			MaxWidthRatio: defaultMaxWidthRatio,
			HPadding:      defaultHPadding,
			VPadding:      defaultVPadding,
			StrokeWidth:   defaultStrokeWidth,
			BottomMargin:  defaultBottomMargin,
		},
		Clip: Clip{
			MaxSeconds: defaultClipMaxSeconds,
		},
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
