package seed

import (
	"councilbet/betting"
	"councilbet/config"
	"councilbet/mysql"
	"councilbet/typefile"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/bwmarrin/snowflake"
)

// 1チームの人数
var rosterSize = map[betting.Game]int{
	betting.LOL:  5,
	betting.PUBG: 4,
	betting.FIFA: 1,
}

// Seed は開発用に偽のチームとベッターの配分を登録する
func Seed(repo *mysql.Repository, node *snowflake.Node, cfg config.SeedConfig) error {
	faker := gofakeit.New(0)

	for _, game := range betting.Games() {
		teams, err := repo.Teams(string(game))
		if err != nil {
			return err
		}
		// 既に登録済みの場合はスキップ
		for i := len(teams); i < cfg.TeamsPerGame; i++ {
			team := fakeTeam(faker, game, node.Generate().String())
			if err := repo.CreateTeam(&team); err != nil {
				return fmt.Errorf("seed team: %w", err)
			}
		}
	}

	events, err := repo.Events()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	event := events[0]

	for i := 0; i < cfg.Bettors; i++ {
		bettor := faker.Numerify("2024####")
		for _, game := range betting.Games() {
			roster, err := repo.RosterIDs(string(game))
			if err != nil {
				return err
			}
			if len(roster) == 0 {
				continue
			}

			alloc, err := betting.ValidateAllocation(randomAllocation(faker, roster, betting.PointsPerGame), betting.PointsPerGame)
			if err != nil {
				return fmt.Errorf("seed allocation: %w", err)
			}
			submissionID := node.Generate().String()
			bets := typefile.ToBets(submissionID, event.ID, bettor, game, alloc)
			err = repo.ReplaceBets(event.ID, bettor, string(game), bets)
			// 結果登録済みの種目はスキップ
			if errors.Is(err, betting.ErrBettingClosed) {
				continue
			}
			if err != nil {
				return fmt.Errorf("seed bets: %w", err)
			}
		}
	}

	fmt.Println("seed完了")
	return nil
}

func fakeTeam(faker *gofakeit.Faker, game betting.Game, uuid string) typefile.Team {
	team := typefile.Team{
		Name:     faker.Color() + " " + faker.Animal(),
		GameType: string(game),
		Uuid:     uuid,
	}
	for i := 0; i < rosterSize[game]; i++ {
		team.Members = append(team.Members, typefile.Member{Name: faker.Name()})
	}
	return team
}

// randomAllocation spreads budget over up to three teams of the roster.
func randomAllocation(faker *gofakeit.Faker, roster []uint, budget int) map[uint]int {
	picks := faker.IntRange(1, min(3, len(roster)))
	order := faker.Rand.Perm(len(roster))

	entries := make(map[uint]int, picks)
	left := budget
	for i := 0; i < picks; i++ {
		id := roster[order[i]]
		if i == picks-1 {
			entries[id] = left
			break
		}
		points := faker.IntRange(0, left)
		entries[id] = points
		left -= points
	}
	return entries
}
