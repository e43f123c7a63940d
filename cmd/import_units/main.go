// import_units carga conversiones de unidad por ítem desde un CSV y las registra en una sola transacción.
//
// Uso: go run ./cmd/import_units -company <uuid> [-charset iso-8859-1] [-sep ';' -decimal ','] conversiones.csv
//
// Columnas: item_id, from_unit, to_unit, from_quantity, to_quantity (la primera fila es encabezado).
// Si una fila es inválida no se registra ninguna.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func main() {
	companyID := flag.String("company", "", "UUID de la empresa dueña de los ítems")
	charset := flag.String("charset", "utf-8", "codificación del archivo: utf-8 | iso-8859-1 | windows-1252")
	sep := flag.String("sep", ",", "separador de columnas")
	decimalSep := flag.String("decimal", ".", "separador decimal de las cantidades: . | ,")
	flag.Parse()

	if *companyID == "" || flag.NArg() != 1 || len([]rune(*sep)) != 1 ||
		(*decimalSep != "." && *decimalSep != ",") || *decimalSep == *sep {
		fmt.Fprintln(os.Stderr, "uso: import_units -company <uuid> [-charset iso-8859-1] [-sep ';' -decimal ','] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	in, err := decodeReader(f, *charset)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}
	rows, err := parseRows(in, *companyID, []rune(*sep)[0], []rune(*decimalSep)[0])
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	graphs := ledger.NewGraphProvider(postgres.NewUnitConversionRepository(pool), false)
	uc := ledger.NewConversionUseCase(postgres.NewTxRunner(pool), itemRepo, graphs, nil, log)

	n, err := uc.Import(ctx, rows)
	if err != nil {
		log.Error().Err(err).Msg("importación cancelada, no se registró ninguna conversión")
		pool.Close()
		os.Exit(1)
	}
	fmt.Printf("Registradas %d conversiones de %s\n", n, flag.Arg(0))
}
