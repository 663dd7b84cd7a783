package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringPassword
	stepLoggingIn
	stepMenu
	stepSending
	stepShowingResult
)

type menuEntry struct {
	label  string
	method string
	path   string
	body   map[string]interface{}
}

var menu = []menuEntry{
	{"Estado actual", http.MethodGet, "/api/robot/estado-actual", nil},
	{"Encender", http.MethodPost, "/api/robot/encender", nil},
	{"Apagar", http.MethodPost, "/api/robot/apagar", nil},
	{"Mover adelante", http.MethodPost, "/api/robot/mover", map[string]interface{}{"velocidad": 150, "direccion": "adelante"}},
	{"Mover atrás", http.MethodPost, "/api/robot/mover", map[string]interface{}{"velocidad": 150, "direccion": "atras"}},
	{"Rotar 90°", http.MethodPost, "/api/robot/rotar", map[string]interface{}{"angulo": 90}},
	{"Parar", http.MethodPost, "/api/robot/parar", nil},
	{"Volver al inicio", http.MethodPost, "/api/robot/volver_inicio", nil},
	{"Calibrar", http.MethodPost, "/api/robot/calibrar", nil},
	{"Resumen de actividad", http.MethodGet, "/api/robot/resumen", nil},
}

type model struct {
	step         step
	cursor       int
	username     string
	password     string
	authToken    string
	currentInput string
	message      string
	result       string
	quitting     bool
}

type loginSuccessMsg struct{ token string }
type requestDoneMsg struct{ body string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func apiURL() string {
	if v := os.Getenv("ROBOT_API_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}

func initialModel() model {
	return model{step: stepEnteringUsername}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(username, password string) tea.Cmd {
	return func() tea.Msg {
		payload, _ := json.Marshal(map[string]string{
			"username": username,
			"password": password,
		})
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Post(apiURL()+"/api/auth/login", "application/json", bytes.NewReader(payload))
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed (%d)", resp.StatusCode)}
		}

		var body struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return errMsg{err}
		}
		return loginSuccessMsg{token: body.Token}
	}
}

func sendCommand(token string, entry menuEntry) tea.Cmd {
	return func() tea.Msg {
		var reader io.Reader
		if entry.body != nil {
			payload, _ := json.Marshal(entry.body)
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequest(entry.method, apiURL()+entry.path, reader)
		if err != nil {
			return errMsg{err}
		}
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Do(req)
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()

		raw, _ := io.ReadAll(resp.Body)
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, raw, "", "  "); err != nil {
			return requestDoneMsg{body: string(raw)}
		}
		return requestDoneMsg{body: pretty.String()}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case loginSuccessMsg:
		m.authToken = msg.token
		m.step = stepMenu
		m.message = ""
		return m, nil

	case requestDoneMsg:
		m.result = msg.body
		m.step = stepShowingResult
		return m, nil

	case errMsg:
		m.message = msg.Error()
		switch m.step {
		case stepLoggingIn:
			m.step = stepEnteringUsername
			m.username = ""
			m.password = ""
			m.currentInput = ""
		case stepSending:
			m.step = stepMenu
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringUsername, stepEnteringPassword:
		switch msg.String() {
		case "enter":
			if m.currentInput == "" {
				return m, nil
			}
			if m.step == stepEnteringUsername {
				m.username = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringPassword
				return m, nil
			}
			m.password = m.currentInput
			m.currentInput = ""
			m.step = stepLoggingIn
			return m, login(m.username, m.password)
		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.currentInput += msg.String()
			}
		}

	case stepMenu:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(menu)-1 {
				m.cursor++
			}
		case "enter":
			m.step = stepSending
			return m, sendCommand(m.authToken, menu[m.cursor])
		case "q":
			m.quitting = true
			return m, tea.Quit
		}

	case stepShowingResult:
		switch msg.String() {
		case "enter", "esc", "q":
			m.result = ""
			m.step = stepMenu
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Hasta luego!\n"
	}

	s := titleStyle.Render("Consola de control del robot") + "\n"

	switch m.step {
	case stepEnteringUsername:
		s += promptStyle.Render("Usuario: ") + m.currentInput + "█\n"
	case stepEnteringPassword:
		s += promptStyle.Render("Contraseña: ")
		for range m.currentInput {
			s += "*"
		}
		s += "█\n"
	case stepLoggingIn:
		s += "Iniciando sesión...\n"
	case stepMenu:
		s += "Selecciona un comando:\n\n"
		for i, entry := range menu {
			if i == m.cursor {
				s += selectedStyle.Render("> "+entry.label) + "\n"
			} else {
				s += normalStyle.Render(entry.label) + "\n"
			}
		}
		s += "\n(↑/↓ para navegar, enter para enviar, q para salir)\n"
	case stepSending:
		s += "Enviando comando...\n"
	case stepShowingResult:
		s += successStyle.Render("Respuesta:") + "\n" + m.result + "\n\n(enter para volver)\n"
	}

	if m.message != "" {
		s += "\n" + errorStyle.Render(m.message) + "\n"
	}
	return s
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
