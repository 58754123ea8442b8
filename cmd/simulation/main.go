package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

// Drives a full quote conversation against a running server: greeting,
// free-text intent, a typo, selection, duration and clear. Finalize needs a
// token; pass one via ASSISTANT_TOKEN to exercise that step too.

var baseURL = envOr("ASSISTANT_BASE_URL", "http://localhost:3000/api")

func main() {
	token := os.Getenv("ASSISTANT_TOKEN")
	sessionId := "sim-session"

	step("Greeting", sessionId, token, map[string]interface{}{})
	step("Intent detection", sessionId, token, map[string]interface{}{"mensaje": "necesito alquiler"})
	step("Typo recovery", sessionId, token, map[string]interface{}{"mensaje": "quiero alqiler de sonido"})
	step("Selection", sessionId, token, map[string]interface{}{"seleccion": []int{1, 1, 2}})
	step("Duration", sessionId, token, map[string]interface{}{"dias": 3})
	if token != "" {
		step("Finalize", sessionId, token, map[string]interface{}{"terminar_cotizacion": true})
	} else {
		color.Yellow("Skipping finalize: ASSISTANT_TOKEN not set")
	}
	step("Clear", sessionId, token, map[string]interface{}{"limpiar_cotizacion": true})
}

func step(name, sessionId, token string, payload map[string]interface{}) {
	color.Cyan("== %s ==", name)

	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, baseURL+"/asistente/v1/mensaje", bytes.NewBuffer(body))
	if err != nil {
		color.Red("request build failed: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sessionId)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		color.Red("request failed: %v", err)
		return
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		color.Red("status %d: %s", resp.StatusCode, raw)
		return
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(pretty.String())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
