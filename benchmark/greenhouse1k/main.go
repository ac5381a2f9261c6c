package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

var maxGreenhouses int = 1000
var httpHostPort string = "127.0.0.1:1080"

var authToken string

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

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

	login()

	fmt.Printf("logged in as benchmark admin\n")

	var startTime time.Time
	var usedTime time.Duration

	greenhouseIDs := make([]uint, maxGreenhouses)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxGreenhouses; i++ {
		i := i
		wg.Add(1)
		go func() {
			greenhouseIDs[i] = createGreenhouse(i)
			fmt.Printf("\rcreated greenhouse %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v greenhouses: used time=%v seconds, throughput=%v action/second\n",
		maxGreenhouses, usedTime.Seconds(), float64(maxGreenhouses)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxGreenhouses; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(greenhouseIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v greenhouses: used time=%v seconds, throughput=%v action/second\n",
		maxGreenhouses, usedTime.Seconds(), float64(maxGreenhouses*3)/usedTime.Seconds(),
	)
}

// login authenticates with the credentials from GHM_BENCH_EMAIL and
// GHM_BENCH_PASSWORD. The account must already exist, e.g. via the
// server's -create-admin flag.
func login() {
	email := os.Getenv("GHM_BENCH_EMAIL")
	password := os.Getenv("GHM_BENCH_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("GHM_BENCH_EMAIL and GHM_BENCH_PASSWORD must be set")
	}

	payload := map[string]string{"email": email, "password": password}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/login", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		log.Fatal("Failed to log in:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Login rejected with status %v", resp.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		log.Fatal("Failed to decode login response:", err)
	}
	authToken = loginResp.Token
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func doAuthedJSON(method, path string, payload any) *http.Response {
	var body *bytes.Buffer = &bytes.Buffer{}
	if payload != nil {
		jsonData, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", httpHostPort, path), body)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	return resp
}

func createGreenhouse(index int) uint {
	payload := map[string]string{
		"name":     fmt.Sprintf("Benchmark House %v", index),
		"location": fmt.Sprintf("Sector %v", index%50),
	}
	resp := doAuthedJSON("POST", "/greenhouses", payload)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("create greenhouse failed with status %v", resp.StatusCode))
	}

	var gh struct {
		ID uint `json:"ID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&gh); err != nil {
		panic(err)
	}
	return gh.ID
}

func doAction(greenhouseID uint) {
	actions := []func(){
		genPostReadingAction(greenhouseID),
		genGetIssuesAction(greenhouseID),
		genGetLatestDataAction(greenhouseID),
	}
	actionNames := []string{
		"PostReading",
		"GetIssues",
		"GetLatestData",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for greenhouse %v", actionNames[index], greenhouseID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostReadingAction(greenhouseID uint) func() {
	return func() {
		// Wide enough ranges that roughly half the readings violate
		// at least one threshold and open issues
		payload := map[string]any{
			"timestamp":       time.Now().Format(time.RFC3339),
			"temperature":     rndFloat64(15.0, 30.0, 2),
			"humidity":        rndFloat64(30.0, 70.0, 2),
			"co2":             rndFloat64(300.0, 1200.0, 2),
			"light_intensity": rndFloat64(500.0, 12000.0, 2),
			"soil_ph":         rndFloat64(5.5, 7.5, 2),
			"soil_moisture":   rndFloat64(20.0, 70.0, 2),
		}
		resp := doAuthedJSON("POST", fmt.Sprintf("/greenhouses/%v/readings", greenhouseID), payload)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}

func genGetIssuesAction(greenhouseID uint) func() {
	return func() {
		resp := doAuthedJSON("GET", fmt.Sprintf("/greenhouses/%v/issues", greenhouseID), nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}

func genGetLatestDataAction(greenhouseID uint) func() {
	return func() {
		resp := doAuthedJSON("GET", fmt.Sprintf("/greenhouses/%v/data/latest", greenhouseID), nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}
