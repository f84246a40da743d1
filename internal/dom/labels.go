package dom

// Labels maps a primary language subtag to the localized accessible label of
// the transcript-reveal control.
type Labels map[string]string

// DefaultLabels returns the localized "Show transcript" labels for the
// interface languages the locator understands. Unmapped languages fall back
// to the English label.
func DefaultLabels() Labels {
	return Labels{
		"en": "Show transcript",
		"es": "Mostrar transcripción",
		"fr": "Afficher la transcription",
		"de": "Transkript anzeigen",
		"it": "Mostra trascrizione",
		"pt": "Mostrar transcrição",
		"nl": "Transcript weergeven",
		"pl": "Pokaż transkrypcję",
		"sv": "Visa transkription",
		"tr": "Dökümü göster",
		"ru": "Показать текст видео",
		"uk": "Показати текст відео",
		"ar": "عرض النص",
		"hi": "ट्रांसक्रिप्ट दिखाएं",
		"id": "Tampilkan transkrip",
		"ja": "文字起こしを表示",
		"ko": "스크립트 표시",
		"th": "แสดงการถอดเสียง",
		"vi": "Hiện bản chép lời",
		"zh": "显示字幕记录",
	}
}

// defaultKeywords are transcript-related fragments across scripts, used as
// the last matching pass when no localized label matched.
func defaultKeywords() []string {
	return []string{
		"transcript",
		"transcripción",
		"transcrição",
		"transcription",
		"transkript",
		"transkrip",
		"trascrizione",
		"transkrypcja",
		"transkription",
		"расшифровка",
		"текст видео",
		"текст відео",
		"文字起こし",
		"字幕記錄",
		"字幕记录",
		"스크립트",
		"النص",
		"ट्रांसक्रिप्ट",
		"บทบรรยาย",
		"chép lời",
	}
}
