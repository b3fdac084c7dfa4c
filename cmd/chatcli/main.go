// Command chatcli is a small terminal client for the chatbot API: it posts
// each line to /api/chat and carries the returned session id across turns so
// the backend's context inference has history to work with.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	baseURL  = flag.String("url", "http://localhost:8001", "Chatbot API base URL")
	userType = flag.String("user-type", "visitor", "User type tag stored with each message (visitor, parent, student)")
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	UserType  string `json:"user_type,omitempty"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
	Error     string `json:"error"`
}

func main() {
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}
	endpoint := strings.TrimSuffix(*baseURL, "/") + "/api/chat"

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Println(boldGreen("RMSS Tutorbot"))
	fmt.Printf("Connected to: %s\n", boldCyan(*baseURL))
	fmt.Println("Type your message and press Enter. Type 'exit' or press Ctrl+C to quit.")
	fmt.Println()

	var sessionID string
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.ToLower(input) == "exit" {
			break
		}

		resp, err := send(client, endpoint, chatRequest{Message: input, SessionID: sessionID, UserType: *userType})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Println("Make sure the tutorbot server is running.")
			continue
		}
		sessionID = resp.SessionID

		fmt.Print(boldCyan("Assistant: "))
		fmt.Println(resp.Response)
		fmt.Println()
	}
}

func send(client *http.Client, endpoint string, req chatRequest) (*chatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpResp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if httpResp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return nil, fmt.Errorf("server: %s", out.Error)
		}
		return nil, fmt.Errorf("server returned %s", httpResp.Status)
	}
	return &out, nil
}
