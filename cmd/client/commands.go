package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	ecli "github.com/iudanet/egovcms/internal/client/cli"
)

func commands(flags *Flags) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "home",
			Usage: "show the current user and available boards",
			Action: func(ctx context.Context, c *cli.Command) error {
				return flags.Cli.RunHome(ctx)
			},
		},
		loginCommand(flags),
		{
			Name:  "logout",
			Usage: "end the session and forget the stored token",
			Action: func(ctx context.Context, c *cli.Command) error {
				return flags.Cli.RunLogout(ctx)
			},
		},
		{
			Name:  "status",
			Usage: "show session user and token expiry",
			Action: func(ctx context.Context, c *cli.Command) error {
				return flags.Cli.RunStatus(ctx)
			},
		},
		signupCommand(flags),
		boardCommand(flags),
		mypageCommand(flags),
		adminCommand(flags),
	}
}

func loginCommand(flags *Flags) *cli.Command {
	p := ecli.LoginParams{}
	return &cli.Command{
		Name:      "login",
		Usage:     "log in to the CMS",
		UsageText: "egovcms login [--id ID] [--password PASSWORD] [--user-se USR]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Usage: "member id", Destination: &p.ID},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "password (prompted when empty)",
				Sources:     cli.EnvVars("EGOVCMS_PASSWORD"),
				Destination: &p.Password,
			},
			&cli.StringFlag{Name: "user-se", Usage: "member role", Value: "USR", Destination: &p.UserSe},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return flags.Cli.RunLogin(ctx, p)
		},
	}
}

func signupCommand(flags *Flags) *cli.Command {
	p := ecli.SignupParams{}
	return &cli.Command{
		Name:  "signup",
		Usage: "register a new member",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Usage: "member id", Destination: &p.ID},
			&cli.StringFlag{Name: "name", Usage: "member name", Destination: &p.Name},
			&cli.StringFlag{Name: "email", Usage: "email address", Destination: &p.Email},
			&cli.StringFlag{Name: "password", Usage: "password (prompted when empty)", Destination: &p.Password},
			&cli.StringFlag{Name: "confirm", Usage: "password confirmation", Destination: &p.Confirm},
			&cli.StringFlag{Name: "password-hint", Usage: "password hint code", Destination: &p.PasswordHint},
			&cli.StringFlag{Name: "hint-answer", Usage: "answer to the password hint", Destination: &p.HintAnswer},
			&cli.StringFlag{Name: "gender", Usage: "gender code", Destination: &p.Gender},
			&cli.StringFlag{Name: "phone", Usage: "mobile phone number", Destination: &p.Phone},
			&cli.StringFlag{Name: "zip", Usage: "zip code", Destination: &p.Zip},
			&cli.StringFlag{Name: "address", Usage: "address", Destination: &p.Address},
			&cli.StringFlag{Name: "detail-address", Usage: "detail address", Destination: &p.DetailAddr},
			&cli.BoolFlag{Name: "terms", Usage: "print the terms of use first", Destination: &p.ShowTerms},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return flags.Cli.RunSignup(ctx, p)
		},
	}
}

func boardCommand(flags *Flags) *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "browse and write board articles",
		Commands: []*cli.Command{
			{
				Name:  "boards",
				Usage: "list available boards",
				Action: func(ctx context.Context, c *cli.Command) error {
					return flags.Cli.RunBoards(ctx)
				},
			},
			{
				Name:      "list",
				Usage:     "list articles of a board",
				UsageText: "egovcms board list <bbsId> [--page N] [--search WORD] [--cnd 0|1|2]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Usage: "page number", Value: 1},
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "search word"},
					&cli.StringFlag{Name: "cnd", Usage: "search condition (0 title, 1 content, 2 author)", Value: "0"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return flags.Cli.RunBoardList(ctx, ecli.BoardListParams{
						BbsID:     c.Args().First(),
						Search:    c.String("search"),
						SearchCnd: c.String("cnd"),
						Page:      c.Int("page"),
					})
				},
			},
			{
				Name:      "show",
				Usage:     "show an article",
				UsageText: "egovcms board show <bbsId> <nttId>",
				Action: func(ctx context.Context, c *cli.Command) error {
					nttID, err := articleID(c, 1)
					if err != nil {
						return err
					}
					return flags.Cli.RunBoardShow(ctx, c.Args().First(), nttID)
				},
			},
			{
				Name:      "write",
				Usage:     "write a new article or edit an existing one",
				UsageText: "egovcms board write <bbsId> [--title T] [--content C] [--file PATH]... [--edit nttId]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "article title"},
					&cli.StringFlag{Name: "content", Usage: "article content"},
					&cli.StringSliceFlag{Name: "file", Aliases: []string{"f"}, Usage: "attachment path, repeatable"},
					&cli.Int64Flag{Name: "edit", Usage: "id of the article to edit"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return flags.Cli.RunBoardWrite(ctx, ecli.WriteParams{
						BbsID:   c.Args().First(),
						Title:   c.String("title"),
						Content: c.String("content"),
						Files:   c.StringSlice("file"),
						EditID:  c.Int64("edit"),
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "delete an article",
				UsageText: "egovcms board delete <bbsId> <nttId> [--yes]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip confirmation"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					nttID, err := articleID(c, 1)
					if err != nil {
						return err
					}
					return flags.Cli.RunBoardDelete(ctx, c.Args().First(), nttID, c.Bool("yes"))
				},
			},
		},
	}
}

func mypageCommand(flags *Flags) *cli.Command {
	p := ecli.ProfileParams{}
	return &cli.Command{
		Name:  "mypage",
		Usage: "view and manage your profile",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "show your profile",
				Action: func(ctx context.Context, c *cli.Command) error {
					return flags.Cli.RunMypageShow(ctx)
				},
			},
			{
				Name:  "update",
				Usage: "update profile fields, empty flags keep current values",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Destination: &p.Name},
					&cli.StringFlag{Name: "email", Destination: &p.Email},
					&cli.StringFlag{Name: "phone", Destination: &p.Phone},
					&cli.StringFlag{Name: "zip", Destination: &p.Zip},
					&cli.StringFlag{Name: "address", Destination: &p.Address},
					&cli.StringFlag{Name: "detail-address", Destination: &p.DetailAddr},
					&cli.StringFlag{Name: "gender", Destination: &p.Gender},
					&cli.StringFlag{Name: "password-hint", Destination: &p.PasswordHint},
					&cli.StringFlag{Name: "hint-answer", Destination: &p.HintAnswer},
					&cli.StringFlag{Name: "password", Usage: "new password", Destination: &p.Password},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return flags.Cli.RunMypageUpdate(ctx, p)
				},
			},
			{
				Name:  "withdraw",
				Usage: "withdraw your membership",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip confirmation"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return flags.Cli.RunMypageWithdraw(ctx, c.Bool("yes"))
				},
			},
		},
	}
}

func adminCommand(flags *Flags) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "administrator tools",
		Commands: []*cli.Command{
			{
				Name:  "members",
				Usage: "list members",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Usage: "page number", Value: 1},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return flags.Cli.RunAdminMembers(ctx, c.Int("page"))
				},
			},
		},
	}
}

// articleID разбирает nttId из позиционного аргумента
func articleID(c *cli.Command, pos int) (int64, error) {
	raw := c.Args().Get(pos)
	if raw == "" {
		return 0, fmt.Errorf("missing article id. Usage: %s", c.UsageText)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid article id %q", raw)
	}
	return id, nil
}
