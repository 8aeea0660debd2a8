package sqlinline

// Campaign statements. The leading "--sql <uuid>" marker is consumed by
// infra.SQLRunner for log correlation.

const QInsertCampaign = `--sql 3f9c1b7e-5a42-4d18-9c6f-02e7b54a8d31
insert into campaigns (id, title, description, ngo_id, goal_amount, raised_amount, status, total_donors_count, created_at)
values ($1::uuid, $2::text, $3::text, $4::uuid, $5::bigint, 0, 'pending', 0, now())
returning created_at;
`

const QGetCampaign = `--sql 8d27e6a0-914b-47f3-b2c5-6fd08a193e47
select id, title, description, ngo_id, goal_amount, raised_amount, status, total_donors_count, created_at, approved_at, rejection_reason
from campaigns
where id = $1::uuid;
`

const QCampaignEntries = `--sql c5b01d94-27af-43e8-8f06-9ab38c47d152
select donor_id, amount, donated_at
from campaign_donors
where campaign_id = $1::uuid
order by donated_at, id;
`

const QListActiveCampaigns = `--sql 61e84f2b-30d9-4c57-a1b8-7c25f90de683
select id, title, description, ngo_id, goal_amount, raised_amount, status, total_donors_count, created_at, approved_at, rejection_reason
from campaigns
where status = 'active'
order by created_at desc;
`

const QListNGOCampaigns = `--sql b4a6c8d1-7e35-49f0-8b2a-d19c04e57f36
select id, title, description, ngo_id, goal_amount, raised_amount, status, total_donors_count, created_at, approved_at, rejection_reason
from campaigns
where ngo_id = $1::uuid
order by created_at desc;
`

// QApplyDonation is the whole ledger mutation as one conditional statement:
// the update only matches an active campaign, and the entry insert feeds off
// the update's result, so concurrent donations can never lose an increment
// and a raced status change yields zero rows instead of a write.
const QApplyDonation = `--sql e2f75c38-0a61-4b9d-bc84-53d1a7e90f26
with updated as (
    update campaigns
       set raised_amount = raised_amount + $3::bigint,
           total_donors_count = total_donors_count + 1
     where id = $1::uuid and status = 'active'
 returning id, raised_amount, total_donors_count
), entry as (
    insert into campaign_donors (id, campaign_id, donor_id, amount, donated_at)
    select gen_random_uuid(), updated.id, $2::uuid, $3::bigint, now()
      from updated
 returning donated_at
)
select updated.raised_amount, updated.total_donors_count
from updated, entry;
`

const QCampaignStatus = `--sql 97d3b0f5-48c2-4e6a-9d17-20ab85c4f6e9
select status from campaigns where id = $1::uuid;
`

const QSetCampaignStatus = `--sql 1a5e9d72-c604-4f3b-a8c1-e67f20b94d58
update campaigns
   set status = $2::text,
       approved_at = case when $2::text = 'active' and approved_at is null then now() else approved_at end,
       rejection_reason = case when $2::text = 'rejected' and rejection_reason is null then nullif($3::text, '') else rejection_reason end
 where id = $1::uuid;
`

const QDonorHistory = `--sql 7c40f8a9-d215-4b6e-bf93-48e1c06a72d5
select c.id, c.title, d.amount, d.donated_at
from campaign_donors d
join campaigns c on c.id = d.campaign_id
where d.donor_id = $1::uuid
order by d.donated_at desc;
`
