package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/bellestudio/salon-agenda/internal/agenda"
	"github.com/bellestudio/salon-agenda/internal/identity"
	"github.com/bellestudio/salon-agenda/internal/models"
)

// CLI de consulta/operação da agenda contra a API.
//
// Variáveis de ambiente:
//
//	SALON_API_URL - base da API (ex: http://localhost:8080)
//	SALON_TOKEN   - token JWT emitido pelo /auth/login

func main() {

	_ = godotenv.Load()

	baseURL := os.Getenv("SALON_API_URL")
	token := os.Getenv("SALON_TOKEN")

	if baseURL == "" {
		log.Fatal("SALON_API_URL nao definido")
	}

	api := agenda.NewClient(baseURL, token, 0)

	if token != "" {
		if id, err := identity.FromTokenUnverified(token); err == nil {
			fmt.Printf("Logado como %s (%s)\n", id.Name, id.Role)
		}
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	switch os.Args[1] {

	case "list":
		runList(ctx, api, os.Args[2:])

	case "done":
		runDone(ctx, api, os.Args[2:])

	case "toggle-cancel":
		runToggleCancel(ctx, api, os.Args[2:])

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: agenda <list|done|toggle-cancel> [flags]")
}

// ======================================================
// LIST
// ======================================================

func runList(ctx context.Context, api *agenda.Client, args []string) {

	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dateFrom := fs.String("from", "", "data inicial (YYYY-MM-DD)")
	dateTo := fs.String("to", "", "data final (YYYY-MM-DD)")
	professional := fs.String("professional", "", "id do profissional")
	client := fs.String("client", "", "id do cliente")
	status := fs.String("status", "", "status do agendamento")
	page := fs.Int("page", 0, "pagina (base zero)")
	_ = fs.Parse(args)

	q := agenda.Query{
		Filters: agenda.Filters{
			DateFrom:       *dateFrom,
			DateTo:         *dateTo,
			ProfessionalID: *professional,
			ClientID:       *client,
			Status:         *status,
		},
		Page: *page,
		Size: agenda.DefaultPageSize,
	}

	pg, err := api.ListAppointments(ctx, q)
	if err != nil {
		log.Fatalf("listagem falhou: %v", err)
	}

	for _, ap := range pg.Content {
		printAppointment(ap)
	}
	fmt.Printf("pagina %d/%d (%d no total)\n", pg.Page+1, pg.TotalPages, pg.TotalElements)
}

func printAppointment(ap models.Appointment) {
	fmt.Printf("#%d  %s  %-12s  %s / %s  R$ %d,%02d\n",
		ap.ID,
		ap.AppointmentDate.Format("02/01 15:04"),
		ap.Status,
		ap.Client.Name,
		ap.Professional.Name,
		ap.PriceCents/100,
		ap.PriceCents%100,
	)
}

// ======================================================
// DONE (dispara o fluxo de pagamento)
// ======================================================

func runDone(ctx context.Context, api *agenda.Client, args []string) {

	fs := flag.NewFlagSet("done", flag.ExitOnError)
	id := fs.Uint("id", 0, "id do agendamento")
	_ = fs.Parse(args)

	if *id == 0 {
		log.Fatal("informe -id")
	}

	ap, err := api.GetAppointment(ctx, uint(*id))
	if err != nil {
		log.Fatalf("agendamento nao encontrado: %v", err)
	}

	trigger := agenda.NewPaymentTrigger(api, nil, nil)
	lc := agenda.NewLifecycle(api, trigger.HandleCompleted)

	updated, err := lc.Transition(ctx, ap, "DONE")
	if err != nil {
		log.Fatalf("transicao falhou: %v", err)
	}
	fmt.Printf("agendamento #%d concluido\n", updated.ID)

	wf := trigger.Active()
	if wf == nil {
		return
	}

	draft := wf.Draft()
	fmt.Printf("registrar pagamento de R$ %d,%02d via %s? [s/N] ",
		draft.AmountCents/100, draft.AmountCents%100, draft.Method)

	if !confirmStdin() {
		wf.Dismiss()
		fmt.Println("pagamento adiado (registre depois com a API de pagamentos)")
		return
	}

	// Timeout curto: a conclusao ja persistiu, so o pagamento esta em jogo.
	pctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pay, err := wf.Save(pctx)
	if err != nil {
		log.Fatalf("pagamento falhou (o agendamento segue concluido): %v", err)
	}
	fmt.Printf("pagamento #%d registrado (%s)\n", pay.ID, pay.Method)
}

// ======================================================
// TOGGLE CANCEL
// ======================================================

func runToggleCancel(ctx context.Context, api *agenda.Client, args []string) {

	fs := flag.NewFlagSet("toggle-cancel", flag.ExitOnError)
	id := fs.Uint("id", 0, "id do agendamento")
	yes := fs.Bool("yes", false, "confirma sem perguntar")
	_ = fs.Parse(args)

	if *id == 0 {
		log.Fatal("informe -id")
	}

	ap, err := api.GetAppointment(ctx, uint(*id))
	if err != nil {
		log.Fatalf("agendamento nao encontrado: %v", err)
	}

	confirm := func() bool {
		if *yes {
			return true
		}
		if ap.Status == "CANCELED" {
			fmt.Printf("reativar o agendamento #%d? [s/N] ", ap.ID)
		} else {
			fmt.Printf("cancelar o agendamento #%d? [s/N] ", ap.ID)
		}
		return confirmStdin()
	}

	lc := agenda.NewLifecycle(api, nil)

	updated, err := lc.ToggleCancel(ctx, ap, confirm)
	if err != nil {
		if err == agenda.ErrConfirmationDeclined {
			fmt.Println("operacao abortada")
			return
		}
		log.Fatalf("operacao falhou: %v", err)
	}
	fmt.Printf("agendamento #%d agora esta %s\n", updated.ID, updated.Status)
}

func confirmStdin() bool {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "s" || line == "sim" || line == "y" || line == "yes"
}
