package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Встроенные шаблоны, чтобы письма работали без каталога templates/.
// Файлы из LoadTemplates перекрывают их по имени.
var builtinTemplates = map[string]string{
	"email_verification": `<p>Привет!</p>
<p>Подтвердите ваш email, перейдя по ссылке:</p>
<p><a href="{{.VerifyURL}}">{{.VerifyURL}}</a></p>
<p>Ссылка действительна {{.ExpiresIn}}.</p>`,
	"friend_request": `<p>Привет, {{.AddresseeName}}!</p>
<p>{{.RequesterName}} хочет добавить вас в друзья на MovieBlend.</p>
<p><a href="{{.RequestsURL}}">Посмотреть запросы</a></p>`,
	"welcome": `<p>Добро пожаловать в MovieBlend, {{.UserName}}!</p>
<p>Отмечайте просмотренные фильмы, собирайте плейлисты и сравнивайте вкусы с друзьями.</p>`,
}

// TemplateManager реализует TemplateRenderer для управления шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает новый менеджер шаблонов c встроенными шаблонами
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, tpl := range builtinTemplates {
		// Встроенные шаблоны статичны, ошибка парсинга невозможна
		_ = tm.AddTemplate(name, tpl)
	}

	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// LoadTemplates загружает шаблоны из директории
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		templateName := strings.TrimSuffix(filepath.Base(path), ".html")
		if err := tm.AddTemplate(templateName, string(content)); err != nil {
			return fmt.Errorf("failed to add template %s: %w", templateName, err)
		}

		return nil
	})
}

// TemplateNames возвращает список имен загруженных шаблонов
func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}

	return names
}
