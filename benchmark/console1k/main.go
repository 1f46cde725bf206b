package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxOperators int = 1000
var httpHostPort string = "127.0.0.1:1080"
var username string = "admin"
var password string = "admin-demo-123"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var token string

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	token = login()

	fmt.Printf("logged in as %v\n", username)

	alarmIDs := fetchAlarmIDs()
	if len(alarmIDs) == 0 {
		log.Fatal("no alarms to work with, start the server with CONSOLE_SEED_DEMO=true")
	}

	fmt.Printf("fetched %v alarm IDs\n", len(alarmIDs))

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxOperators {
		wg.Add(1)
		go func() {
			doAction(i, alarmIDs)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v operators: used time=%v seconds, throughput=%v action/second\n",
		maxOperators, usedTime.Seconds(), float64(maxOperators*3)/usedTime.Seconds(),
	)
}

func login() string {
	payload := map[string]string{
		"username": username,
		"password": password,
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/login", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		log.Fatal("Failed to login:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("Login rejected with status ", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Fatal("Failed to decode login response:", err)
	}
	return body.Token
}

func authedGet(path string) (*http.Response, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("http://%s%s", httpHostPort, path), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return http.DefaultClient.Do(req)
}

func authedPost(path string, payload any) (*http.Response, error) {
	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return http.DefaultClient.Do(req)
}

func fetchAlarmIDs() []string {
	resp, err := authedGet("/alarms?pageSize=1000")
	if err != nil {
		log.Fatal("Failed to list alarms:", err)
	}
	defer resp.Body.Close()

	var page struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		log.Fatal("Failed to decode alarm page:", err)
	}

	ids := make([]string, 0, len(page.Data))
	for _, record := range page.Data {
		ids = append(ids, record.ID)
	}
	return ids
}

func doAction(operatorIdx int, alarmIDs []string) {
	actions := []func(){
		genListAlarmsAction(),
		genGetDetailsAction(alarmIDs),
		genAcknowledgeAction(operatorIdx, alarmIDs),
	}
	actionNames := []string{
		"ListAlarms",
		"GetDetails",
		"Acknowledge",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for operator %v", actionNames[index], operatorIdx)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genListAlarmsAction() func() {
	return func() {
		page := 1 + rnd.Intn(3)
		resp, err := authedGet(fmt.Sprintf("/alarms?page=%v&pageSize=20", page))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}

func genGetDetailsAction(alarmIDs []string) func() {
	return func() {
		id := alarmIDs[rnd.Intn(len(alarmIDs))]
		resp, err := authedGet(fmt.Sprintf("/alarms/details/%s", id))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}

func genAcknowledgeAction(operatorIdx int, alarmIDs []string) func() {
	return func() {
		id := alarmIDs[rnd.Intn(len(alarmIDs))]
		resp, err := authedPost("/alarms/acknowledge", map[string]any{
			"alarmIds": []string{id},
			"comment":  fmt.Sprintf("benchmark ack from operator %v", operatorIdx),
		})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}
