package resume

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Contact — контактные данные, извлечённые из текста резюме.
// Отсутствующее поле равно nil, пустая строка не используется как признак "не найдено".
type Contact struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Fields returns how many of the contact fields were found.
func (c Contact) Fields() int {
	n := 0
	for _, f := range []*string{c.Name, c.Email, c.Phone} {
		if f != nil {
			n++
		}
	}
	return n
}

// Meta хранит метаданные загруженного файла. Сам файл и его текст не сохраняются.
type Meta struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// Parsed is the outcome of one upload: contact guesses plus file metadata.
type Parsed struct {
	Contact Contact `json:"contact"`
	Resume  Meta    `json:"resume"`
}
