package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orris-inc/gymdesk/internal/application/member/usecases"
	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
	"github.com/orris-inc/gymdesk/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/gymdesk/internal/shared/biztime"
)

var (
	configPath string
	output     string

	profile    usecases.ProfileInput
	plan       string
	trainer    string
	reason     string
	typeFilter string
	activeOnly bool
	page       int
	pageSize   int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage gym members",
		Long:  `Create members, track attendance and payments, change plans and remove members.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newAddRegularCommand(),
		newAddPremiumCommand(),
		newActivateCommand(),
		newDeactivateCommand(),
		newAttendCommand(),
		newUpgradeCommand(),
		newPayCommand(),
		newDiscountCommand(),
		newRevertCommand("revert-regular", vo.MemberTypeRegular),
		newRevertCommand("revert-premium", vo.MemberTypePremium),
		newListCommand(),
		newShowCommand(),
	)

	return cmd
}

func addProfileFlags(cmd *cobra.Command) {
	profile = usecases.ProfileInput{}

	f := cmd.Flags()
	f.StringVar(&profile.ID, "id", "", "Member ID, digits only (default: next free id)")
	f.StringVar(&profile.Name, "name", "", "Full name (required)")
	f.StringVar(&profile.Location, "location", "", "Location")
	f.StringVar(&profile.Phone, "phone", "", "Phone number")
	f.StringVar(&profile.Email, "email", "", "Email address")
	f.StringVar(&profile.Gender, "gender", "", "Gender: Male or Female (required)")
	f.StringVar(&profile.DOB, "dob", "", "Date of birth, e.g. 7-March-1999 (required)")
	f.StringVar(&profile.MembershipStartDate, "start", "", "Membership start date (default: today)")
	f.StringVar(&profile.ReferralSource, "referral", "", "Referral source")
	f.StringVar(&profile.PaidAmount, "paid", "", "Amount paid at registration")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("dob")
}

// completeProfile fills the id and start date defaults.
func completeProfile(app *bootstrap.App) usecases.ProfileInput {
	p := profile
	if strings.TrimSpace(p.ID) == "" {
		p.ID = app.Members.NextID()
	}
	if strings.TrimSpace(p.MembershipStartDate) == "" {
		p.MembershipStartDate = vo.CalendarDateOf(biztime.Today()).String()
	}
	return p
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&output, "output", "o", formatTable, "Output format: table, json or yaml")
}

func openApp(cmd *cobra.Command) (*bootstrap.App, error) {
	return bootstrap.Open(commandContext(cmd), configPath)
}

// openForUpdate opens the store for a command that saves. Records skipped on
// load are not written back, so the user is warned before they are lost.
func openForUpdate(cmd *cobra.Command) (*bootstrap.App, error) {
	app, err := openApp(cmd)
	if err != nil {
		return nil, err
	}

	if skipped := app.LoadResult.Skipped; len(skipped) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: %d unreadable record(s) in %s were skipped and will be dropped when the file is saved. Run 'gymdesk store check' for details.\n",
			len(skipped), app.LoadResult.Source)
	}
	return app, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newAddRegularCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-regular",
		Short: "Register a regular member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.CreateRegular.Execute(commandContext(cmd), usecases.CreateRegularMemberCommand{
				ProfileInput: completeProfile(app),
				Plan:         plan,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Regular member %s added on the %s plan (%s).\n",
				result.ID, result.Regular.Plan, result.Regular.Price)
			return nil
		},
	}

	addProfileFlags(cmd)
	plan = ""
	cmd.Flags().StringVar(&plan, "plan", "", "Plan: "+vo.PlanNames()+" (default: Basic)")

	return cmd
}

func newAddPremiumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-premium",
		Short: "Register a premium member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.CreatePremium.Execute(commandContext(cmd), usecases.CreatePremiumMemberCommand{
				ProfileInput:    completeProfile(app),
				PersonalTrainer: trainer,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Premium member %s added with trainer %s.\n", result.ID, result.Premium.PersonalTrainer)
			fmt.Fprintf(out, "Paid %s of %s, remaining %s.\n",
				result.Premium.PaidAmount, result.Premium.PremiumCharge, result.Premium.RemainingAmount)
			return nil
		},
	}

	addProfileFlags(cmd)
	trainer = ""
	cmd.Flags().StringVar(&trainer, "trainer", "", "Personal trainer (required)")
	_ = cmd.MarkFlagRequired("trainer")

	return cmd
}

func newActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Activate a membership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.Activate.Execute(commandContext(cmd), usecases.ActivateMembershipCommand{MemberID: args[0]})
			if err != nil {
				return err
			}

			if !result.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Membership of member %s is already active.\n", result.MemberID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Membership of member %s activated.\n", result.MemberID)
			return nil
		},
	}
}

func newDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a membership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.Deactivate.Execute(commandContext(cmd), usecases.DeactivateMembershipCommand{MemberID: args[0]})
			if err != nil {
				return err
			}

			if !result.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Membership of member %s is not active.\n", result.MemberID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Membership of member %s deactivated.\n", result.MemberID)
			return nil
		},
	}
}

func newAttendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attend <id>",
		Short: "Mark attendance for an active member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.MarkAttendance.Execute(commandContext(cmd), usecases.MarkAttendanceCommand{MemberID: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Recorded {
				fmt.Fprintf(out, "Member %s is not active; attendance was not recorded.\n", result.MemberID)
				return nil
			}
			fmt.Fprintf(out, "Attendance marked for member %s: %d visits, %d loyalty points.\n",
				result.MemberID, result.Attendance, result.LoyaltyPoints)
			if result.EligibleForUpgrade {
				fmt.Fprintln(out, "Member is eligible for a plan upgrade.")
			}
			return nil
		},
	}
}

func newUpgradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <id> <plan>",
		Short: "Change the plan of a regular member",
		Long:  `Change the plan of a regular member with at least 30 attendances. Plans: ` + vo.PlanNames() + `.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.UpgradePlan.Execute(commandContext(cmd), usecases.UpgradePlanCommand{
				MemberID: args[0],
				Plan:     args[1],
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Member %s moved from %s to %s. New price: %s.\n",
				result.MemberID, result.PreviousPlan, result.Plan, result.Price)
			return nil
		},
	}
}

func newPayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id> <amount>",
		Short: "Record a payment towards the premium charge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.PayDueAmount.Execute(commandContext(cmd), usecases.PayDueAmountCommand{
				MemberID: args[0],
				Amount:   args[1],
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Completed {
				fmt.Fprintf(out, "Payment of %s received. The premium charge is now fully paid.\n", result.Amount)
				return nil
			}
			fmt.Fprintf(out, "Payment of %s received. Total paid %s, remaining %s.\n",
				result.Amount, result.TotalPaid, result.Remaining)
			return nil
		},
	}
}

func newDiscountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discount <id>",
		Short: "Apply the full payment discount to a premium member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.Discount.Execute(commandContext(cmd), usecases.CalculateDiscountCommand{MemberID: args[0]})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Discount of %s (%d%% of the premium charge) applied to member %s. Fee: %s.\n",
				result.Discount, result.DiscountPercent, result.MemberID, result.Fee)
			return nil
		},
	}
}

func newRevertCommand(use string, memberType vo.MemberType) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: "Remove a " + strings.ToLower(memberType.Label()) + " member",
		Long:  `Reset the member, record the removal reason and remove the member from the store.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openForUpdate(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.Revert.Execute(commandContext(cmd), usecases.RevertMemberCommand{
				MemberID: args[0],
				Type:     memberType,
				Reason:   reason,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s member %s removed. Reason: %s\n",
				result.Member.Type, result.Member.ID, result.Reason)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Reason for removal (required)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.Members.List.Execute(commandContext(cmd), usecases.ListMembersQuery{
				Type:       typeFilter,
				ActiveOnly: activeOnly,
				Page:       page,
				PageSize:   pageSize,
			})
			if err != nil {
				return err
			}

			return renderList(cmd.OutOrStdout(), output, result)
		},
	}

	typeFilter, activeOnly = "", false
	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "Only list regular or premium members")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only list active members")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Members per page (default: all)")
	addOutputFlag(cmd)

	return cmd
}

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show member details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}

			m, err := app.Members.Get.Execute(commandContext(cmd), usecases.GetMemberQuery{MemberID: args[0]})
			if err != nil {
				return err
			}

			return renderDetail(cmd.OutOrStdout(), output, m)
		},
	}

	addOutputFlag(cmd)

	return cmd
}
