// Command authcheck exercises a running authentication server end to
// end: registration, failed and successful logins, profile access,
// logout, and the password-reset flow. It exits non-zero on the first
// violated expectation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const (
	email     = "a@x.com"
	passwd    = "pw1"
	newPasswd = "pw2"

	sessionCookie = "session_id"
)

type checker struct {
	base   string
	client *http.Client
}

func (c *checker) do(method, path string, form url.Values, sessionID string) (*http.Response, map[string]string, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		return nil, nil, err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sessionID})
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	payload := map[string]string{}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	return resp, payload, nil
}

func (c *checker) registerUser() error {
	resp, payload, err := c.do(http.MethodPost, "/users", url.Values{"email": {email}, "password": {passwd}}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		if payload["message"] != "user created" {
			return fmt.Errorf("register: unexpected payload %v", payload)
		}
	case http.StatusBadRequest:
		if payload["message"] != "email already registered" {
			return fmt.Errorf("register: unexpected payload %v", payload)
		}
	default:
		return fmt.Errorf("register: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *checker) logInWrongPassword() error {
	resp, _, err := c.do(http.MethodPost, "/sessions", url.Values{"email": {email}, "password": {"wrong"}}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return fmt.Errorf("wrong-password login: expected 401, got %d", resp.StatusCode)
	}
	return nil
}

func (c *checker) profileUnlogged() error {
	resp, _, err := c.do(http.MethodGet, "/profile", nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusForbidden {
		return fmt.Errorf("unlogged profile: expected 403, got %d", resp.StatusCode)
	}
	return nil
}

func (c *checker) logIn(pw string) (string, error) {
	resp, payload, err := c.do(http.MethodPost, "/sessions", url.Values{"email": {email}, "password": {pw}}, "")
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login: expected 200, got %d", resp.StatusCode)
	}
	if payload["message"] != "logged in" {
		return "", fmt.Errorf("login: unexpected payload %v", payload)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie {
			return ck.Value, nil
		}
	}
	return "", fmt.Errorf("login: no %s cookie in response", sessionCookie)
}

func (c *checker) profileLogged(sessionID string) error {
	resp, payload, err := c.do(http.MethodGet, "/profile", nil, sessionID)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("profile: expected 200, got %d", resp.StatusCode)
	}
	if payload["email"] != email {
		return fmt.Errorf("profile: unexpected payload %v", payload)
	}
	return nil
}

func (c *checker) logOut(sessionID string) error {
	resp, _, err := c.do(http.MethodDelete, "/sessions", nil, sessionID)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusFound {
		return fmt.Errorf("logout: expected redirect, got %d", resp.StatusCode)
	}
	return nil
}

func (c *checker) resetPasswordToken() (string, error) {
	resp, payload, err := c.do(http.MethodPost, "/reset_password", url.Values{"email": {email}}, "")
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reset token: expected 200, got %d", resp.StatusCode)
	}
	token := payload["reset_token"]
	if token == "" {
		return "", fmt.Errorf("reset token: missing in payload %v", payload)
	}
	return token, nil
}

func (c *checker) updatePassword(token string) error {
	resp, payload, err := c.do(http.MethodPut, "/reset_password",
		url.Values{"email": {email}, "reset_token": {token}, "new_password": {newPasswd}}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update password: expected 200, got %d", resp.StatusCode)
	}
	if payload["message"] != "Password updated" {
		return fmt.Errorf("update password: unexpected payload %v", payload)
	}
	return nil
}

func run(base string) error {
	c := &checker{
		base: strings.TrimRight(base, "/"),
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}

	if err := c.registerUser(); err != nil {
		return err
	}
	if err := c.logInWrongPassword(); err != nil {
		return err
	}
	if err := c.profileUnlogged(); err != nil {
		return err
	}

	sessionID, err := c.logIn(passwd)
	if err != nil {
		return err
	}
	if err := c.profileLogged(sessionID); err != nil {
		return err
	}
	if err := c.logOut(sessionID); err != nil {
		return err
	}
	if err := c.profileUnlogged(); err != nil {
		return err
	}

	token, err := c.resetPasswordToken()
	if err != nil {
		return err
	}
	if err := c.updatePassword(token); err != nil {
		return err
	}
	if _, err := c.logIn(newPasswd); err != nil {
		return err
	}

	return nil
}

func main() {
	base := flag.String("base", "http://127.0.0.1:5000", "base URL of the server")
	flag.Parse()

	if err := run(*base); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("OK")
}
